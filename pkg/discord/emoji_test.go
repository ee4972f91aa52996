package discord

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
)

func TestEmojiKey(t *testing.T) {
	if got := EmojiKey(&discordgo.Emoji{Name: "1️⃣"}); got != "1️⃣" {
		t.Errorf("unicode: %q", got)
	}
	if got := EmojiKey(&discordgo.Emoji{Name: "Fire", ID: "1059511748199186482"}); got != "<:Fire:1059511748199186482>" {
		t.Errorf("custom: %q", got)
	}
	if got := EmojiKey(&discordgo.Emoji{Name: "spin", ID: "42", Animated: true}); got != "<a:spin:42>" {
		t.Errorf("animated: %q", got)
	}
	if got := EmojiKey(nil); got != "" {
		t.Errorf("nil: %q", got)
	}
}

func TestEmojiAPIName(t *testing.T) {
	if got := EmojiAPIName("↪️"); got != "↪️" {
		t.Errorf("unicode: %q", got)
	}
	if got := EmojiAPIName("<:Fire:1059511748199186482>"); got != "Fire:1059511748199186482" {
		t.Errorf("custom: %q", got)
	}
	if got := EmojiAPIName("<a:spin:42>"); got != "a:spin:42" {
		t.Errorf("animated: %q", got)
	}
}

func TestTimestampTag(t *testing.T) {
	at := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
	if got := TimestampTag(at); got != "<t:1773513000:F>" {
		t.Errorf("TimestampTag = %q", got)
	}
}

func TestEscapeMarkdown(t *testing.T) {
	if got := EscapeMarkdown("a*b_c`d"); got != "a\\*b\\_c\\`d" {
		t.Errorf("EscapeMarkdown = %q", got)
	}
	if got := EscapeMarkdown("sans balisage"); got != "sans balisage" {
		t.Errorf("EscapeMarkdown = %q", got)
	}
}
