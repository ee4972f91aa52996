package application

import (
	"context"
	"sort"
	"strings"

	"raidbot/internal/domain"
	"raidbot/internal/domain/entities"
)

// SignupSummary builds the read model behind /showsignups: per-role name
// lists in the raid type's declared display order, the backup list, and the
// distinct participant count across every reaction. The cache is only read,
// never mutated; users who no longer resolve in the guild are skipped.
func (s *RaidService) SignupSummary(ctx context.Context, guildID, raidID string) (*entities.SignupSummary, error) {
	raid, err := s.repo.Get(ctx, raidID)
	if err != nil {
		return nil, err
	}
	rt, ok := s.types.Get(raid.Type)
	if !ok {
		return nil, domain.ErrUnknownRaidType
	}

	snapshot := s.cache.Snapshot(raidID)
	distinct := make(map[string]struct{})

	summary := &entities.SignupSummary{
		RaidName: raid.Name,
		RaidType: raid.Type,
		Backup:   rt.Backup,
	}
	for _, slot := range rt.Roles {
		ids := snapshot[slot.Emoji]
		summary.Roles = append(summary.Roles, entities.RoleSignups{
			Emoji: slot.Emoji,
			Role:  slot.Label,
			Names: s.resolveNames(ctx, guildID, ids),
		})
	}
	summary.Backups = s.resolveNames(ctx, guildID, snapshot[rt.Backup])

	for _, ids := range snapshot {
		for _, id := range ids {
			distinct[id] = struct{}{}
		}
	}
	summary.Total = len(distinct)
	return summary, nil
}

func (s *RaidService) resolveNames(ctx context.Context, guildID string, userIDs []string) []string {
	names := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		if name, ok := s.msgr.MemberDisplayName(ctx, guildID, id); ok {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}
