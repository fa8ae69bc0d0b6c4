package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/k-yamane/vocamind/internal/mission"
)

func TestUpdateStatsAfterMission(t *testing.T) {
	completed := func(date string, xp int) mission.Mission {
		return mission.Mission{
			ID:       "alice:" + date,
			UserID:   "alice",
			Date:     date,
			Status:   mission.StatusCompleted,
			XPReward: xp,
		}
	}

	tests := []struct {
		name     string
		stats    Stats
		mission  mission.Mission
		expected Stats
	}{
		{
			name:    "first mission starts the streak",
			stats:   Stats{},
			mission: completed("2026-03-01", 50),
			expected: Stats{
				UserID:            "alice",
				XP:                50,
				Streak:            1,
				LastMissionDate:   "2026-03-01",
				MissionsCompleted: 1,
			},
		},
		{
			name: "consecutive day extends the streak",
			stats: Stats{
				UserID:            "alice",
				XP:                50,
				Streak:            3,
				LastMissionDate:   "2026-03-01",
				MissionsCompleted: 3,
			},
			mission: completed("2026-03-02", 50),
			expected: Stats{
				UserID:            "alice",
				XP:                100,
				Streak:            4,
				LastMissionDate:   "2026-03-02",
				MissionsCompleted: 4,
			},
		},
		{
			name: "same day keeps the streak",
			stats: Stats{
				UserID:            "alice",
				XP:                50,
				Streak:            3,
				LastMissionDate:   "2026-03-01",
				MissionsCompleted: 3,
			},
			mission: completed("2026-03-01", 50),
			expected: Stats{
				UserID:            "alice",
				XP:                100,
				Streak:            3,
				LastMissionDate:   "2026-03-01",
				MissionsCompleted: 4,
			},
		},
		{
			name: "a gap resets the streak",
			stats: Stats{
				UserID:            "alice",
				XP:                200,
				Streak:            7,
				LastMissionDate:   "2026-03-01",
				MissionsCompleted: 7,
			},
			mission: completed("2026-03-05", 50),
			expected: Stats{
				UserID:            "alice",
				XP:                250,
				Streak:            1,
				LastMissionDate:   "2026-03-05",
				MissionsCompleted: 8,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := updateStatsAfterMission(tt.stats, tt.mission)
			assert.Equal(t, tt.expected, got)
		})
	}
}
