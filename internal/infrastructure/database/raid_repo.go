package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"raidbot/internal/domain"
	"raidbot/internal/domain/entities"
	"raidbot/internal/ports/output"
)

var _ output.RaidRepository = (*RaidRepository)(nil)

type RaidRepository struct {
	pool *pgxpool.Pool
}

func NewRaidRepository(pool *pgxpool.Pool) *RaidRepository {
	return &RaidRepository{pool: pool}
}

func (r *RaidRepository) Upsert(ctx context.Context, raid *entities.Raid) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO active_raids (raid_id, name, channel_id, raid_type, start_ts, notify_ts, duration_label, timezone_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (raid_id) DO UPDATE SET
			name = EXCLUDED.name,
			channel_id = EXCLUDED.channel_id,
			raid_type = EXCLUDED.raid_type,
			start_ts = EXCLUDED.start_ts,
			notify_ts = EXCLUDED.notify_ts,
			duration_label = EXCLUDED.duration_label,
			timezone_code = EXCLUDED.timezone_code`,
		raid.ID, raid.Name, raid.ChannelID, raid.Type,
		raid.StartAt.Unix(), raid.NotifyAt.Unix(), raid.Duration, raid.Timezone,
	)
	if err != nil {
		return fmt.Errorf("upsert raid: %w", err)
	}
	return nil
}

func (r *RaidRepository) Get(ctx context.Context, id string) (*entities.Raid, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT raid_id, name, channel_id, raid_type, start_ts, notify_ts, duration_label, timezone_code
		FROM active_raids WHERE raid_id = $1`, id)
	raid, err := scanRaid(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRaidNotFound
		}
		return nil, fmt.Errorf("get raid: %w", err)
	}
	return raid, nil
}

func (r *RaidRepository) GetAll(ctx context.Context) ([]entities.Raid, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT raid_id, name, channel_id, raid_type, start_ts, notify_ts, duration_label, timezone_code
		FROM active_raids ORDER BY raid_id DESC`)
	if err != nil {
		return nil, fmt.Errorf("get all raids: %w", err)
	}
	defer rows.Close()

	var out []entities.Raid
	for rows.Next() {
		raid, err := scanRaid(rows)
		if err != nil {
			return nil, fmt.Errorf("scan raid: %w", err)
		}
		out = append(out, *raid)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get all raids: %w", err)
	}
	return out, nil
}

func (r *RaidRepository) UpdateSchedule(ctx context.Context, id string, startAt, notifyAt time.Time, duration, tzCode string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE active_raids
		SET start_ts = $2, notify_ts = $3, duration_label = $4, timezone_code = $5
		WHERE raid_id = $1`,
		id, startAt.Unix(), notifyAt.Unix(), duration, tzCode,
	)
	if err != nil {
		return fmt.Errorf("update raid schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRaidNotFound
	}
	return nil
}

// Delete removes the raid row. Deleting an absent id is a no-op.
func (r *RaidRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM active_raids WHERE raid_id = $1`, id); err != nil {
		return fmt.Errorf("delete raid: %w", err)
	}
	return nil
}

func scanRaid(row pgx.Row) (*entities.Raid, error) {
	var (
		raid     entities.Raid
		startTs  int64
		notifyTs int64
		duration pgtype.Text
		tzCode   pgtype.Text
	)
	err := row.Scan(&raid.ID, &raid.Name, &raid.ChannelID, &raid.Type, &startTs, &notifyTs, &duration, &tzCode)
	if err != nil {
		return nil, err
	}
	raid.StartAt = time.Unix(startTs, 0).UTC()
	raid.NotifyAt = time.Unix(notifyTs, 0).UTC()
	if duration.Valid {
		raid.Duration = duration.String
	}
	if tzCode.Valid {
		raid.Timezone = tzCode.String
	}
	return &raid, nil
}
