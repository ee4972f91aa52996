package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "raidbot/pkg/discord"
)

// onReactionAdd forwards raw reaction-add events to the ingestion path.
// Ordering matters per raid: the cache mutation happens synchronously here,
// only the pruning of disallowed emojis runs in the background.
func (b *Bot) onReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	isBot := r.UserID == s.State.User.ID
	if !isBot && r.Member != nil && r.Member.User != nil {
		isBot = r.Member.User.Bot
	}
	b.handler.raidUC.IngestReactionAdd(
		context.Background(),
		r.ChannelID,
		r.MessageID,
		pkgdiscord.EmojiKey(&r.Emoji),
		r.UserID,
		isBot,
	)
}

func (b *Bot) onReactionRemove(s *discordgo.Session, r *discordgo.MessageReactionRemove) {
	b.handler.raidUC.IngestReactionRemove(
		context.Background(),
		r.MessageID,
		pkgdiscord.EmojiKey(&r.Emoji),
		r.UserID,
	)
}
