package output

import (
	"context"
	"time"

	"raidbot/internal/domain/entities"
)

type RaidRepository interface {
	Upsert(ctx context.Context, raid *entities.Raid) error
	Get(ctx context.Context, id string) (*entities.Raid, error)
	GetAll(ctx context.Context) ([]entities.Raid, error)
	UpdateSchedule(ctx context.Context, id string, startAt, notifyAt time.Time, duration, tzCode string) error
	Delete(ctx context.Context, id string) error
}
