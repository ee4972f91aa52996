package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"raidbot/pkg/tz"
)

// Modes du brouillon.
const (
	draftModeCreate = "create"
	draftModeUpdate = "update"
)

// Custom IDs des composants du flux de création/mise à jour.
const (
	draftSelectType     = "raid_draft_type"
	draftSelectDuration = "raid_draft_duration"
	draftSelectDate     = "raid_draft_date"
	draftSelectTZ       = "raid_draft_tz"
	draftSubmitButton   = "raid_draft_submit"
	draftTimeModal      = "raid_time_modal"
)

var durationChoices = []string{"3 hours", "1 hour 30 minutes"}

const dateChoiceDays = 14

// RaidDraft accumulates the organizer's choices across the select-menu flow.
// One draft per user; the submit button stays disabled until IsComplete.
type RaidDraft struct {
	Mode      string
	RaidID    string // update only: id of the raid being rescheduled
	Name      string
	RaidType  string
	Duration  string
	Date      string // AAAA-MM-JJ
	TZ        string
	ChannelID string
}

// IsComplete reports whether every dropdown has a selection.
func (d *RaidDraft) IsComplete() bool {
	return d.Name != "" && d.RaidType != "" && d.Duration != "" && d.Date != "" && d.TZ != ""
}

// buildDraftComponents renders the flow: raid type (create only), duration,
// date and timezone selects, then the time-entry button. Selected options are
// marked as defaults so the view survives message edits.
func (h *Handler) buildDraftComponents(d *RaidDraft, now time.Time) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent

	if d.Mode == draftModeCreate {
		var typeOptions []discordgo.SelectMenuOption
		for _, name := range h.types.Names() {
			typeOptions = append(typeOptions, discordgo.SelectMenuOption{
				Label:   name,
				Value:   name,
				Default: name == d.RaidType,
			})
		}
		rows = append(rows, selectRow(draftSelectType, "Choisir le raid", typeOptions))
	}

	var durationOptions []discordgo.SelectMenuOption
	for _, label := range durationChoices {
		durationOptions = append(durationOptions, discordgo.SelectMenuOption{
			Label:   label,
			Value:   label,
			Default: label == d.Duration,
		})
	}
	rows = append(rows, selectRow(draftSelectDuration, "Choisir la durée", durationOptions))

	var dateOptions []discordgo.SelectMenuOption
	for day := 0; day < dateChoiceDays; day++ {
		t := now.AddDate(0, 0, day)
		value := t.Format("2006-01-02")
		dateOptions = append(dateOptions, discordgo.SelectMenuOption{
			Label:   t.Format("02/01/2006"),
			Value:   value,
			Default: value == d.Date,
		})
	}
	rows = append(rows, selectRow(draftSelectDate, "Choisir la date", dateOptions))

	var tzOptions []discordgo.SelectMenuOption
	for _, code := range tz.Codes() {
		tzOptions = append(tzOptions, discordgo.SelectMenuOption{
			Label:   tz.DisplayAbbr(code, now),
			Value:   code,
			Default: code == d.TZ,
		})
	}
	rows = append(rows, selectRow(draftSelectTZ, "Choisir le fuseau horaire", tzOptions))

	buttonLabel := "Saisir l'heure et créer"
	if d.Mode == draftModeUpdate {
		buttonLabel = "Saisir l'heure et mettre à jour"
	}
	rows = append(rows, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{
			Label:    buttonLabel,
			Style:    discordgo.PrimaryButton,
			CustomID: draftSubmitButton,
			Disabled: !d.IsComplete(),
		},
	}})

	return rows
}

func selectRow(customID, placeholder string, options []discordgo.SelectMenuOption) discordgo.MessageComponent {
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.SelectMenu{
			CustomID:    customID,
			Placeholder: placeholder,
			Options:     options,
		},
	}}
}

// HandleDraftSelect applies one dropdown selection to the user's draft and
// re-renders the flow message.
func (h *Handler) HandleDraftSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	draft, ok := h.draftFor(i.Member.User.ID)
	if !ok {
		respondEphemeral(s, i.Interaction, "❌ "+h.translate("err_generic", nil))
		return
	}
	data := i.MessageComponentData()
	if len(data.Values) == 0 {
		return
	}
	switch data.CustomID {
	case draftSelectType:
		draft.RaidType = data.Values[0]
	case draftSelectDuration:
		draft.Duration = data.Values[0]
	case draftSelectDate:
		draft.Date = data.Values[0]
	case draftSelectTZ:
		draft.TZ = data.Values[0]
	}
	respondUpdate(s, i.Interaction, draftTitle(draft), h.buildDraftComponents(draft, time.Now()))
}

// HandleDraftSubmit opens the time modal once every dropdown is filled.
func (h *Handler) HandleDraftSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	draft, ok := h.draftFor(i.Member.User.ID)
	if !ok {
		respondEphemeral(s, i.Interaction, "❌ "+h.translate("err_generic", nil))
		return
	}
	if !draft.IsComplete() {
		respondEphemeral(s, i.Interaction, h.translate("complete_selections", nil))
		return
	}
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: draftTimeModal,
			Title:    "Heure du raid",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "start_time",
						Label:       "Heure de début",
						Style:       discordgo.TextInputShort,
						Required:    true,
						Placeholder: "Ex: 6:30PM ou 18:30",
					},
				}},
			},
		},
	})
}

func draftTitle(d *RaidDraft) string {
	if d.Mode == draftModeUpdate {
		return "**Mise à jour du raid**"
	}
	return "**Configuration du raid**"
}
