package discord

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"raidbot/internal/application"
	"raidbot/internal/config"
	"raidbot/internal/domain/raidtypes"
	"raidbot/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
}

// NewBot creates a Bot and wires ports: output adapters -> application (use cases) -> handler.
func NewBot(
	cfg *config.Config,
	raidRepo output.RaidRepository,
	translator output.T,
	types *raidtypes.Catalog,
) *Bot {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		log.Fatal("❌ Erreur lors de la création de la session Discord:", err)
	}

	raidUC := application.NewRaidService(application.RaidServiceParams{
		Repo:          raidRepo,
		Messenger:     NewSessionMessenger(s),
		Translator:    translator,
		Types:         types,
		Registry:      application.NewRegistry(),
		Cache:         application.NewSignupCache(),
		PingMention:   cfg.PingMention(),
		TestChannelID: cfg.TestChannelID,
	})

	handler := NewHandler(raidUC, translator, types, cfg)

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: handler,
	}
	bot.setupHandlers()
	return bot
}

func (b *Bot) setupHandlers() {
	b.session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsGuildMembers
	b.session.AddHandler(b.handleInteraction)
	b.session.AddHandler(b.onReactionAdd)
	b.session.AddHandler(b.onReactionRemove)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case "createraid":
			b.handler.HandleCreateRaid(s, i)
		case "updateraid":
			b.handler.HandleUpdateRaid(s, i)
		case "cancelraid":
			b.handler.HandleCancelRaid(s, i)
		case "showsignups":
			b.handler.HandleShowSignups(s, i)
		}
	case discordgo.InteractionMessageComponent:
		switch i.MessageComponentData().CustomID {
		case draftSelectType, draftSelectDuration, draftSelectDate, draftSelectTZ:
			b.handler.HandleDraftSelect(s, i)
		case draftSubmitButton:
			b.handler.HandleDraftSubmit(s, i)
		case pickUpdateSelect:
			b.handler.HandlePickUpdate(s, i)
		case pickCancelSelect:
			b.handler.HandlePickCancel(s, i)
		case pickSignupsSelect:
			b.handler.HandlePickSignups(s, i)
		}
	case discordgo.InteractionModalSubmit:
		if i.ModalSubmitData().CustomID == draftTimeModal {
			b.handler.HandleTimeModalSubmit(s, i)
		}
	}
}

// Start runs the bot until interrupted. Active raids are restored before the
// slash commands go live: no new command can race the rebuild of the registry
// and the sign-up cache.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("erreur lors de l'ouverture de la session: %w", err)
	}
	defer b.session.Close()

	if err := b.handler.raidUC.RestoreActiveRaids(context.Background()); err != nil {
		return fmt.Errorf("erreur lors de la restauration des raids actifs: %w", err)
	}

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "createraid",
			Description: "Créer un nouveau raid",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "nom",
					Description: "Nom du raid",
					Required:    true,
				},
			},
		},
		{Name: "updateraid", Description: "Reprogrammer un raid actif"},
		{Name: "cancelraid", Description: "Annuler un raid actif"},
		{Name: "showsignups", Description: "Afficher les inscriptions d'un raid actif"},
	}

	for _, cmd := range commands {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
			log.Printf("⚠️ Erreur lors de l'enregistrement de la commande %s: %v", cmd.Name, err)
		}
	}

	fmt.Println("🤖 Bot en ligne ! Appuyez sur CTRL+C pour quitter.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	b.handler.raidUC.Shutdown()
	return nil
}
