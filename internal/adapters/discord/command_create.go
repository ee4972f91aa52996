package discord

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"raidbot/internal/domain"
	"raidbot/internal/domain/entities"
	pkgdiscord "raidbot/pkg/discord"
)

// HandleCreateRaid starts the creation flow for /createraid.
func (h *Handler) HandleCreateRaid(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !h.requireRaidRole(s, i) {
		return
	}
	var name string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "nom" {
			name = opt.StringValue()
		}
	}
	draft := &RaidDraft{
		Mode:      draftModeCreate,
		Name:      name,
		ChannelID: i.ChannelID,
	}
	h.putDraft(i.Member.User.ID, draft)
	respondEphemeralComponents(s, i.Interaction, draftTitle(draft), h.buildDraftComponents(draft, time.Now()))
}

// HandleTimeModalSubmit finalizes the flow: parses the entered time, builds
// the UTC start instant and routes to creation or reschedule.
func (h *Handler) HandleTimeModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	draft, ok := h.draftFor(i.Member.User.ID)
	if !ok {
		respondEphemeral(s, i.Interaction, "❌ "+h.translate("err_generic", nil))
		return
	}

	timeStr := pkgdiscord.FirstTextInput(i.ModalSubmitData())
	hour, minute, err := pkgdiscord.ParseClockTime(timeStr)
	if err != nil {
		respondEphemeral(s, i.Interaction, "❌ "+h.translate("err_invalid_time", nil))
		return
	}
	start, err := pkgdiscord.CombineDateTime(draft.Date, hour, minute, draft.TZ)
	if err != nil {
		respondEphemeral(s, i.Interaction, "❌ "+h.translate("err_invalid_time", nil))
		return
	}

	if draft.Mode == draftModeUpdate {
		h.finalizeUpdate(s, i, draft, start)
		return
	}
	h.finalizeCreate(s, i, draft, start)
}

// finalizeCreate validates, posts the announcement, persists the raid and
// seeds the sign-up reactions.
func (h *Handler) finalizeCreate(s *discordgo.Session, i *discordgo.InteractionCreate, draft *RaidDraft, start time.Time) {
	ctx := context.Background()

	if err := h.raidUC.ValidateStart(start); err != nil {
		respondEphemeral(s, i.Interaction, "❌ "+h.translate("err_start_in_past", nil))
		return
	}
	rt, ok := h.types.Get(draft.RaidType)
	if !ok {
		respondEphemeral(s, i.Interaction, "❌ "+h.translate("err_generic", nil))
		return
	}

	content := rt.Render(draft.Name, draft.Duration, pkgdiscord.TimestampTag(start), h.cfg.PingMention())
	post, err := s.ChannelMessageSend(draft.ChannelID, content)
	if err != nil {
		log.Printf("❌ Publication de l'annonce du raid: %v", err)
		respondEphemeral(s, i.Interaction, "❌ "+h.translate("err_generic", nil))
		return
	}

	raid := &entities.Raid{
		ID:        post.ID,
		Name:      draft.Name,
		ChannelID: draft.ChannelID,
		Type:      draft.RaidType,
		StartAt:   start,
		Duration:  draft.Duration,
		Timezone:  draft.TZ,
	}
	if err := h.raidUC.CreateRaid(ctx, raid); err != nil {
		if errors.Is(err, domain.ErrStartInPast) {
			respondEphemeral(s, i.Interaction, "❌ "+h.translate("err_start_in_past", nil))
			return
		}
		log.Printf("❌ Sauvegarde du raid %s: %v", post.ID, err)
		respondEphemeral(s, i.Interaction, "❌ "+h.translate("err_generic", nil))
		return
	}

	h.dropDraft(i.Member.User.ID)
	respondEphemeral(s, i.Interaction, "✅ "+h.translate("raid_created", nil))

	// Seeds the menu: one reaction per role emoji, in catalog order.
	go func() {
		for _, emoji := range rt.Reactions {
			if err := s.MessageReactionAdd(post.ChannelID, post.ID, pkgdiscord.EmojiAPIName(emoji)); err != nil {
				log.Printf("⚠️ Ajout de la réaction %s sur %s: %v", emoji, post.ID, err)
			}
		}
	}()
}
