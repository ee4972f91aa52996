package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// EmojiKey renders an emoji the way the raid catalog spells it: the rune
// itself for unicode, "<:name:id>" for custom guild emojis.
func EmojiKey(e *discordgo.Emoji) string {
	if e == nil {
		return ""
	}
	if e.ID == "" {
		return e.Name
	}
	if e.Animated {
		return fmt.Sprintf("<a:%s:%s>", e.Name, e.ID)
	}
	return fmt.Sprintf("<:%s:%s>", e.Name, e.ID)
}

// EmojiAPIName converts a catalog key to the "name:id" form the REST
// reaction endpoints expect. Unicode emojis pass through unchanged.
func EmojiAPIName(key string) string {
	if strings.HasSuffix(key, ">") {
		if inner, ok := strings.CutPrefix(key, "<:"); ok {
			return strings.TrimSuffix(inner, ">")
		}
		if inner, ok := strings.CutPrefix(key, "<a:"); ok {
			return "a:" + strings.TrimSuffix(inner, ">")
		}
	}
	return key
}
