package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"raidbot/internal/ports/output"
	pkgdiscord "raidbot/pkg/discord"
)

// Ensure SessionMessenger implements the output.Messenger port.
var _ output.Messenger = (*SessionMessenger)(nil)

// SessionMessenger backs the Messenger port with a live Discord session.
type SessionMessenger struct {
	s *discordgo.Session
}

func NewSessionMessenger(s *discordgo.Session) *SessionMessenger {
	return &SessionMessenger{s: s}
}

func (m *SessionMessenger) Send(ctx context.Context, channelID, content string) (string, error) {
	msg, err := m.s.ChannelMessageSend(channelID, content)
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}

func (m *SessionMessenger) FetchChannel(ctx context.Context, channelID string) error {
	if _, err := m.s.State.Channel(channelID); err == nil {
		return nil
	}
	_, err := m.s.Channel(channelID)
	return err
}

// FetchMessage loads the announcement and its full reaction state. Reactor
// lists are paginated by the API, 100 users per page.
func (m *SessionMessenger) FetchMessage(ctx context.Context, channelID, messageID string) (*output.MessageRef, error) {
	msg, err := m.s.ChannelMessage(channelID, messageID)
	if err != nil {
		return nil, err
	}

	ref := &output.MessageRef{
		ID:        msg.ID,
		ChannelID: channelID,
		Reactions: make(map[string][]output.Reactor, len(msg.Reactions)),
	}
	for _, reaction := range msg.Reactions {
		key := pkgdiscord.EmojiKey(reaction.Emoji)
		apiName := pkgdiscord.EmojiAPIName(key)
		after := ""
		for {
			users, err := m.s.MessageReactions(channelID, messageID, apiName, 100, "", after)
			if err != nil {
				return nil, err
			}
			for _, u := range users {
				ref.Reactions[key] = append(ref.Reactions[key], output.Reactor{UserID: u.ID, Bot: u.Bot})
			}
			if len(users) < 100 {
				break
			}
			after = users[len(users)-1].ID
		}
	}
	return ref, nil
}

func (m *SessionMessenger) RemoveReaction(ctx context.Context, channelID, messageID, emoji, userID string) error {
	return m.s.MessageReactionRemove(channelID, messageID, pkgdiscord.EmojiAPIName(emoji), userID)
}

func (m *SessionMessenger) MemberDisplayName(ctx context.Context, guildID, userID string) (string, bool) {
	member, err := m.s.State.Member(guildID, userID)
	if err != nil || member == nil {
		member, err = m.s.GuildMember(guildID, userID)
		if err != nil || member == nil {
			return "", false
		}
	}
	return resolveDisplayName(member), true
}
