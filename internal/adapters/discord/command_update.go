package discord

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"raidbot/internal/domain"
	pkgdiscord "raidbot/pkg/discord"
	"raidbot/pkg/tz"
)

const pickUpdateSelect = "raid_pick_update"

// HandleUpdateRaid lists active raids and asks which one to reschedule.
func (h *Handler) HandleUpdateRaid(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !h.requireRaidRole(s, i) {
		return
	}
	h.respondRaidPicker(s, i, pickUpdateSelect, h.translate("choose_raid_update", nil))
}

// HandlePickUpdate pre-fills the draft flow with the selected raid's current
// schedule, converted back to the organizer's timezone.
func (h *Handler) HandlePickUpdate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	raid, ok := h.pickedRaid(s, i)
	if !ok {
		return
	}

	draft := &RaidDraft{
		Mode:      draftModeUpdate,
		RaidID:    raid.ID,
		Name:      raid.Name,
		RaidType:  raid.Type,
		Duration:  raid.Duration,
		TZ:        raid.Timezone,
		ChannelID: raid.ChannelID,
	}
	if loc, err := tz.Location(raid.Timezone); err == nil {
		draft.Date = raid.StartAt.In(loc).Format("2006-01-02")
	}
	h.putDraft(i.Member.User.ID, draft)
	respondUpdate(s, i.Interaction, draftTitle(draft), h.buildDraftComponents(draft, time.Now()))
}

// finalizeUpdate persists the new schedule then refreshes the announcement.
// An announcement that cannot be edited degrades to a notice: the database
// holds the new schedule either way.
func (h *Handler) finalizeUpdate(s *discordgo.Session, i *discordgo.InteractionCreate, draft *RaidDraft, start time.Time) {
	ctx := context.Background()

	if err := h.raidUC.ValidateStart(start); err != nil {
		respondEphemeral(s, i.Interaction, "❌ "+h.translate("err_start_in_past", nil))
		return
	}
	raid, err := h.raidUC.RescheduleRaid(ctx, draft.RaidID, start, draft.Duration, draft.TZ)
	if err != nil {
		if errors.Is(err, domain.ErrRaidNotFound) {
			respondEphemeral(s, i.Interaction, "❌ "+h.translate("err_raid_not_found", nil))
			return
		}
		log.Printf("❌ Reprogrammation du raid %s: %v", draft.RaidID, err)
		respondEphemeral(s, i.Interaction, "❌ "+h.translate("err_generic", nil))
		return
	}
	h.dropDraft(i.Member.User.ID)

	if rt, ok := h.types.Get(raid.Type); ok {
		content := rt.Render(raid.Name, raid.Duration, pkgdiscord.TimestampTag(raid.StartAt), h.cfg.PingMention())
		if _, err := s.ChannelMessageEdit(raid.ChannelID, raid.ID, content); err != nil {
			log.Printf("⚠️ Édition de l'annonce du raid %s: %v", raid.ID, err)
			respondEphemeral(s, i.Interaction, "⚠️ "+h.translate("post_edit_failed", nil))
			return
		}
	}
	respondEphemeral(s, i.Interaction, "✅ "+h.translate("raid_updated", nil))
}
