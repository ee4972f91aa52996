package input

import (
	"context"
	"time"

	"raidbot/internal/domain/entities"
)

type RaidUseCase interface {
	// ValidateStart rejects start instants that are not in the future.
	ValidateStart(start time.Time) error
	CreateRaid(ctx context.Context, raid *entities.Raid) error
	CancelRaid(ctx context.Context, id string) (*entities.Raid, error)
	RescheduleRaid(ctx context.Context, id string, startAt time.Time, duration, tzCode string) (*entities.Raid, error)
	ListActiveRaids(ctx context.Context) ([]entities.Raid, error)
	SignupSummary(ctx context.Context, guildID, raidID string) (*entities.SignupSummary, error)

	IngestReactionAdd(ctx context.Context, channelID, messageID, emoji, userID string, isBot bool)
	IngestReactionRemove(ctx context.Context, messageID, emoji, userID string)

	// RestoreActiveRaids rehydrates registry/cache state from the store and
	// the announcement messages. Runs once at startup, before commands.
	RestoreActiveRaids(ctx context.Context) error
	// Shutdown cancels and awaits every live notification task.
	Shutdown()
}
