package application

import (
	"context"
	"log"
	"time"

	"raidbot/internal/domain/entities"
)

// RestoreActiveRaids rehydrates registry and sign-up cache state from the
// store after a restart. Rows are processed independently: a failure on one
// never aborts the rest.
func (s *RaidService) RestoreActiveRaids(ctx context.Context) error {
	raids, err := s.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range raids {
		s.restoreRaid(ctx, &raids[i])
	}
	log.Printf("✅ Restauration terminée: %d raid(s) actif(s).", s.registry.Len())
	return nil
}

func (s *RaidService) restoreRaid(ctx context.Context, raid *entities.Raid) {
	// A channel that no longer resolves may be a transient fetch failure:
	// keep the row for the next restart instead of deleting it.
	if err := s.msgr.FetchChannel(ctx, raid.ChannelID); err != nil {
		log.Printf("⚠️ Salon %s introuvable pour le raid %s: %v", raid.ChannelID, raid.ID, err)
		return
	}

	// Placeholder entry first, so reactions arriving during the message
	// fetch below are not silently dropped.
	s.registry.Register(raid.ID, raid.Name, raid.Type, raid.ChannelID)

	ref, err := s.msgr.FetchMessage(ctx, raid.ChannelID, raid.ID)
	if err != nil {
		log.Printf("⚠️ Annonce du raid %s introuvable, inscriptions hors-ligne perdues: %v", raid.ID, err)
	} else {
		s.registry.SetMessage(raid.ID, ref)
		byEmoji := make(map[string][]string, len(ref.Reactions))
		for emoji, reactors := range ref.Reactions {
			for _, reactor := range reactors {
				if reactor.Bot {
					continue
				}
				byEmoji[emoji] = append(byEmoji[emoji], reactor.UserID)
			}
		}
		s.cache.Replace(raid.ID, byEmoji)
	}

	now := s.now()
	if raid.Lapsed(now) {
		log.Printf("ℹ️ Rappel du raid %s '%s' expiré pendant l'arrêt, suppression.", raid.ID, raid.Name)
		s.cache.Drop(raid.ID)
		if err := s.repo.Delete(ctx, raid.ID); err != nil {
			log.Printf("❌ Suppression du raid expiré %s: %v", raid.ID, err)
		}
		s.registry.Remove(raid.ID)
		return
	}

	delay := raid.NotifyAt.Sub(now)
	s.registry.AttachTask(raid.ID, s.scheduleNotification(delay, raid.ChannelID, raid.ID))
	log.Printf("✅ Raid %s '%s' restauré, rappel dans %s.", raid.ID, raid.Name, delay.Round(time.Second))
}
