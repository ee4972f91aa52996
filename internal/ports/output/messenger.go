package output

import "context"

// Reactor is one user currently reacting on a message.
type Reactor struct {
	UserID string
	Bot    bool
}

// MessageRef is a cached reference to an announcement message, including its
// current reaction state at fetch time. Reaction keys use the catalog form:
// the emoji itself for unicode, "<:name:id>" for custom emojis.
type MessageRef struct {
	ID        string
	ChannelID string
	Reactions map[string][]Reactor
}

// Messenger is the chat-platform boundary used by the application core.
// The Discord adapter implements it with a live session; tests use fakes.
type Messenger interface {
	// Send posts content to a channel and returns the new message id.
	Send(ctx context.Context, channelID, content string) (string, error)
	// FetchChannel verifies the channel still resolves.
	FetchChannel(ctx context.Context, channelID string) error
	FetchMessage(ctx context.Context, channelID, messageID string) (*MessageRef, error)
	RemoveReaction(ctx context.Context, channelID, messageID, emoji, userID string) error
	// MemberDisplayName resolves a guild member to a display name.
	// ok is false when the user no longer resolves (left the guild).
	MemberDisplayName(ctx context.Context, guildID, userID string) (name string, ok bool)
}
