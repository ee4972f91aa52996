package application

import (
	"context"
	"log"
	"time"

	"raidbot/internal/domain"
	"raidbot/internal/domain/entities"
	"raidbot/internal/domain/raidtypes"
	"raidbot/internal/ports/output"
)

// RaidServiceParams regroupe les dépendances du service.
type RaidServiceParams struct {
	Repo       output.RaidRepository
	Messenger  output.Messenger
	Translator output.T
	Types      *raidtypes.Catalog
	Registry   *Registry
	Cache      *SignupCache

	// PingMention is the role mention prepended to reminders.
	PingMention string
	// TestChannelID substitutes a TEST MODE marker for the ping.
	TestChannelID string
	// Now overrides the clock in tests. Nil means time.Now.
	Now func() time.Time
}

// RaidService owns the raid lifecycle: scheduling, cancellation, reschedule,
// recovery, reaction ingestion and the sign-up read path. Registry and
// SignupCache are injected so their lifetime is the process's, not the
// service's.
type RaidService struct {
	repo     output.RaidRepository
	msgr     output.Messenger
	t        output.T
	types    *raidtypes.Catalog
	registry *Registry
	cache    *SignupCache

	pingMention   string
	testChannelID string
	now           func() time.Time
}

func NewRaidService(p RaidServiceParams) *RaidService {
	now := p.Now
	if now == nil {
		now = time.Now
	}
	return &RaidService{
		repo:          p.Repo,
		msgr:          p.Messenger,
		t:             p.Translator,
		types:         p.Types,
		registry:      p.Registry,
		cache:         p.Cache,
		pingMention:   p.PingMention,
		testChannelID: p.TestChannelID,
		now:           now,
	}
}

// ValidateStart rejects start instants that are not strictly in the future.
func (s *RaidService) ValidateStart(start time.Time) error {
	if !start.After(s.now()) {
		return domain.ErrStartInPast
	}
	return nil
}

// CreateRaid persists a fully-validated raid and schedules its reminder.
// raid.ID must be the id of the already-posted announcement message; the
// notify instant is derived here. A raid whose notify instant has already
// passed (start less than 30 minutes away) is persisted then immediately
// deleted, matching the recovery-time lapse handling.
func (s *RaidService) CreateRaid(ctx context.Context, raid *entities.Raid) error {
	if err := s.ValidateStart(raid.StartAt); err != nil {
		return err
	}
	if _, ok := s.types.Get(raid.Type); !ok {
		return domain.ErrUnknownRaidType
	}
	raid.StartAt = raid.StartAt.UTC()
	raid.NotifyAt = raid.StartAt.Add(-entities.NotifyOffset)

	if err := s.repo.Upsert(ctx, raid); err != nil {
		return err
	}

	now := s.now()
	if raid.Lapsed(now) {
		log.Printf("⚠️ Raid %s '%s' démarre dans moins de 30 minutes, aucun rappel possible.", raid.ID, raid.Name)
		if err := s.repo.Delete(ctx, raid.ID); err != nil {
			return err
		}
		return nil
	}

	s.registry.Register(raid.ID, raid.Name, raid.Type, raid.ChannelID)
	task := s.scheduleNotification(raid.NotifyAt.Sub(now), raid.ChannelID, raid.ID)
	s.registry.AttachTask(raid.ID, task)
	log.Printf("✅ Raid %s '%s' programmé, rappel dans %s.", raid.ID, raid.Name, raid.NotifyAt.Sub(now).Round(time.Second))
	return nil
}

// CancelRaid tears a raid down: the task first (so it cannot fire mid-purge),
// then cache, store row and registry entry. Returns the raid row so the
// caller can delete the announcement message.
func (s *RaidService) CancelRaid(ctx context.Context, id string) (*entities.Raid, error) {
	raid, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if task := s.registry.TakeTask(id); task != nil {
		task.Cancel()
	}
	s.cache.Drop(id)
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.registry.Remove(id)
	log.Printf("✅ Raid %s '%s' annulé.", id, raid.Name)
	return raid, nil
}

// RescheduleRaid moves an active raid to a new start instant. The old task is
// cancelled before anything else; if cancellation loses the race with an
// in-flight send, the raid fires once under its old schedule and a fresh
// row/entry is created below regardless. A new notify instant already in the
// past deletes the row instead of scheduling a negative delay.
func (s *RaidService) RescheduleRaid(ctx context.Context, id string, startAt time.Time, duration, tzCode string) (*entities.Raid, error) {
	raid, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if task := s.registry.TakeTask(id); task != nil {
		task.Cancel()
	}
	s.registry.Remove(id)

	raid.StartAt = startAt.UTC()
	raid.NotifyAt = raid.StartAt.Add(-entities.NotifyOffset)
	raid.Duration = duration
	raid.Timezone = tzCode
	if err := s.repo.UpdateSchedule(ctx, id, raid.StartAt, raid.NotifyAt, duration, tzCode); err != nil {
		return nil, err
	}

	now := s.now()
	if raid.Lapsed(now) {
		log.Printf("⚠️ Nouveau rappel du raid %s déjà passé, suppression.", id)
		s.cache.Drop(id)
		if err := s.repo.Delete(ctx, id); err != nil {
			return nil, err
		}
		return raid, nil
	}

	s.registry.Register(id, raid.Name, raid.Type, raid.ChannelID)
	task := s.scheduleNotification(raid.NotifyAt.Sub(now), raid.ChannelID, id)
	s.registry.AttachTask(id, task)
	log.Printf("✅ Raid %s reprogrammé, rappel dans %s.", id, raid.NotifyAt.Sub(now).Round(time.Second))
	return raid, nil
}

// ListActiveRaids returns every persisted raid, most recent first.
func (s *RaidService) ListActiveRaids(ctx context.Context) ([]entities.Raid, error) {
	return s.repo.GetAll(ctx)
}

// scheduleNotification starts the single-shot reminder timer. On fire it
// sends the reminder then purges cache, store row and registry entry; the
// purge runs even when the send fails. Cancellation before fire skips both.
func (s *RaidService) scheduleNotification(delay time.Duration, channelID, raidID string) *NotifyTask {
	ctx, cancel := context.WithCancel(context.Background())
	task := &NotifyTask{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(task.done)
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			log.Printf("ℹ️ Rappel du raid %s annulé.", raidID)
			return
		case <-timer.C:
		}

		// Past this point the send is committed; a late Cancel only waits.
		if _, err := s.msgr.Send(context.Background(), channelID, s.reminderText(channelID)); err != nil {
			log.Printf("❌ Envoi du rappel (raid=%s): %v", raidID, err)
		}
		s.cleanup(context.Background(), raidID)
	}()

	return task
}

// cleanup purges every store for raidID. Idempotent: each deletion of an
// absent key is a no-op.
func (s *RaidService) cleanup(ctx context.Context, raidID string) {
	s.cache.Drop(raidID)
	if err := s.repo.Delete(ctx, raidID); err != nil {
		log.Printf("❌ Suppression du raid %s en base: %v", raidID, err)
	}
	s.registry.Remove(raidID)
}

func (s *RaidService) reminderText(channelID string) string {
	ping := s.pingMention
	if s.testChannelID != "" && channelID == s.testChannelID {
		ping = "TEST MODE"
	}
	return s.t.T("", "raid_reminder", map[string]any{"Ping": ping})
}

// Shutdown cancels and awaits every live notification task. Store rows are
// left in place so the next startup can recover them.
func (s *RaidService) Shutdown() {
	for _, id := range s.registry.IDs() {
		if task := s.registry.TakeTask(id); task != nil {
			task.Cancel()
		}
	}
	log.Println("✅ Tâches de rappel arrêtées.")
}
