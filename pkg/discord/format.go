package discord

import (
	"fmt"
	"strings"
	"time"
)

// TimestampTag renders a Discord dynamic timestamp tag (long date/time).
func TimestampTag(t time.Time) string {
	return fmt.Sprintf("<t:%d:F>", t.Unix())
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
	`~`, `\~`,
	"`", "\\`",
	`|`, `\|`,
)

// EscapeMarkdown neutralizes Discord markdown in user-provided names.
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
