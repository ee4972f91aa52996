package discord

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	"raidbot/internal/domain/entities"
)

// Discord caps select menus at 25 options.
const maxPickerOptions = 25

// respondRaidPicker lists the active raids in a select menu, most recent
// first, or tells the user there is nothing to pick.
func (h *Handler) respondRaidPicker(s *discordgo.Session, i *discordgo.InteractionCreate, customID, prompt string) {
	raids, err := h.raidUC.ListActiveRaids(context.Background())
	if err != nil {
		log.Printf("❌ Liste des raids actifs: %v", err)
		respondEphemeral(s, i.Interaction, "❌ "+h.translate("err_generic", nil))
		return
	}
	if len(raids) == 0 {
		respondEphemeral(s, i.Interaction, h.translate("no_active_raids", nil))
		return
	}
	if len(raids) > maxPickerOptions {
		raids = raids[:maxPickerOptions]
	}

	options := make([]discordgo.SelectMenuOption, 0, len(raids))
	for _, raid := range raids {
		options = append(options, discordgo.SelectMenuOption{
			Label: raid.Name,
			Value: raid.ID,
		})
	}
	respondEphemeralComponents(s, i.Interaction, prompt, []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{CustomID: customID, Placeholder: "Sélectionner un raid…", Options: options},
		}},
	})
}

// pickedRaid resolves the raid selected in a picker interaction.
func (h *Handler) pickedRaid(s *discordgo.Session, i *discordgo.InteractionCreate) (*entities.Raid, bool) {
	data := i.MessageComponentData()
	if len(data.Values) == 0 {
		return nil, false
	}
	raidID := data.Values[0]

	raids, err := h.raidUC.ListActiveRaids(context.Background())
	if err != nil {
		log.Printf("❌ Liste des raids actifs: %v", err)
		respondEphemeral(s, i.Interaction, "❌ "+h.translate("err_generic", nil))
		return nil, false
	}
	for idx := range raids {
		if raids[idx].ID == raidID {
			return &raids[idx], true
		}
	}
	respondEphemeral(s, i.Interaction, "❌ "+h.translate("err_raid_not_found", nil))
	return nil, false
}
