package discord

import (
	"context"
	"errors"
	"log"

	"github.com/bwmarrin/discordgo"

	"raidbot/internal/domain"
)

const pickCancelSelect = "raid_pick_cancel"

// HandleCancelRaid lists active raids and asks which one to cancel.
func (h *Handler) HandleCancelRaid(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !h.requireRaidRole(s, i) {
		return
	}
	h.respondRaidPicker(s, i, pickCancelSelect, h.translate("choose_raid_cancel", nil))
}

// HandlePickCancel tears the raid down then deletes its announcement.
// A missing announcement is only logged: the raid is gone either way.
func (h *Handler) HandlePickCancel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()
	if len(data.Values) == 0 {
		return
	}
	raidID := data.Values[0]

	raid, err := h.raidUC.CancelRaid(context.Background(), raidID)
	if err != nil {
		if errors.Is(err, domain.ErrRaidNotFound) {
			respondEphemeral(s, i.Interaction, "❌ "+h.translate("err_raid_not_found", nil))
			return
		}
		log.Printf("❌ Annulation du raid %s: %v", raidID, err)
		respondEphemeral(s, i.Interaction, "❌ "+h.translate("err_generic", nil))
		return
	}

	if err := s.ChannelMessageDelete(raid.ChannelID, raid.ID); err != nil {
		log.Printf("⚠️ Suppression de l'annonce du raid %s: %v", raid.ID, err)
		respondEphemeral(s, i.Interaction, "⚠️ "+h.translate("post_delete_failed", nil))
		return
	}
	respondUpdate(s, i.Interaction, "✅ "+h.translate("raid_cancelled", nil), []discordgo.MessageComponent{})
}
