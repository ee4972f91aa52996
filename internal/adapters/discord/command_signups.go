package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"raidbot/internal/domain"
	"raidbot/internal/domain/entities"
	pkgdiscord "raidbot/pkg/discord"
)

const pickSignupsSelect = "raid_pick_signups"

// HandleShowSignups lists active raids and asks which one to inspect.
func (h *Handler) HandleShowSignups(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !h.requireRaidRole(s, i) {
		return
	}
	log.Printf("ℹ️ Consultation des inscriptions par %s", resolveDisplayName(i.Member))
	h.respondRaidPicker(s, i, pickSignupsSelect, h.translate("choose_raid_signups", nil))
}

// HandlePickSignups renders the sign-up summary for the selected raid.
func (h *Handler) HandlePickSignups(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()
	if len(data.Values) == 0 {
		return
	}
	raidID := data.Values[0]

	summary, err := h.raidUC.SignupSummary(context.Background(), i.GuildID, raidID)
	if err != nil {
		if errors.Is(err, domain.ErrRaidNotFound) {
			respondEphemeral(s, i.Interaction, "❌ "+h.translate("err_raid_not_found", nil))
			return
		}
		log.Printf("❌ Inscriptions du raid %s: %v", raidID, err)
		respondEphemeral(s, i.Interaction, "❌ "+h.translate("err_generic", nil))
		return
	}

	respondUpdate(s, i.Interaction, h.renderSignupSummary(summary), []discordgo.MessageComponent{})
}

func (h *Handler) renderSignupSummary(summary *entities.SignupSummary) string {
	none := h.translate("signups_none", nil)

	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n%s\n", pkgdiscord.EscapeMarkdown(summary.RaidName), h.translate("signups_roles_header", nil))
	for _, role := range summary.Roles {
		fmt.Fprintf(&b, "%s **%s:** %s\n", role.Emoji, role.Role, joinNames(role.Names, none))
	}
	fmt.Fprintf(&b, "\n%s\n", h.translate("signups_backups_header", nil))
	fmt.Fprintf(&b, "%s %s\n", summary.Backup, joinNames(summary.Backups, none))
	fmt.Fprintf(&b, "\n%s", h.translate("signups_total", map[string]any{"Count": summary.Total}))
	return b.String()
}

func joinNames(names []string, none string) string {
	if len(names) == 0 {
		return none
	}
	escaped := make([]string, len(names))
	for idx, name := range names {
		escaped[idx] = pkgdiscord.EscapeMarkdown(name)
	}
	return strings.Join(escaped, ", ")
}
