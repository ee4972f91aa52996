package discord

import (
	"github.com/bwmarrin/discordgo"
)

// canManageRaids restreint les commandes aux chefs de guilde et capitaines de raid.
func (h *Handler) canManageRaids(member *discordgo.Member) bool {
	if member == nil {
		return false
	}
	for _, roleID := range member.Roles {
		if roleID == h.cfg.GuildLeaderRoleID || roleID == h.cfg.RaidCaptainRoleID {
			return true
		}
	}
	return false
}

// requireRaidRole responds with a refusal when the member lacks the role.
func (h *Handler) requireRaidRole(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if h.canManageRaids(i.Member) {
		return true
	}
	respondEphemeral(s, i.Interaction, "❌ "+h.translate("no_permission", nil))
	return false
}
