package session

import (
	"time"

	"github.com/k-yamane/vocamind/internal/mission"
)

// Stats is the aggregate progress record for one user, mutated only when a
// mission completes.
type Stats struct {
	UserID            string `json:"user_id"`
	XP                int    `json:"xp"`
	Streak            int    `json:"streak"`
	LastMissionDate   string `json:"last_mission_date"`
	MissionsCompleted int    `json:"missions_completed"`
}

// updateStatsAfterMission applies a completed mission to the user's stats.
// The streak compares the mission date against the previous mission date:
// same day leaves the streak unchanged (so completing a regenerated mission
// on the same day never double-increments), the very next day extends it,
// and any larger gap resets it to 1.
func updateStatsAfterMission(stats Stats, m mission.Mission) Stats {
	stats.UserID = m.UserID
	stats.XP += m.XPReward
	stats.MissionsCompleted++

	switch dayGap(stats.LastMissionDate, m.Date) {
	case 0:
		if stats.Streak < 1 {
			stats.Streak = 1
		}
	case 1:
		stats.Streak++
	default:
		stats.Streak = 1
	}
	stats.LastMissionDate = m.Date

	return stats
}

// dayGap returns the number of days from previous to current, or -1 when
// previous is missing or unparseable.
func dayGap(previous, current string) int {
	if previous == "" {
		return -1
	}
	prev, err := time.Parse("2006-01-02", previous)
	if err != nil {
		return -1
	}
	curr, err := time.Parse("2006-01-02", current)
	if err != nil {
		return -1
	}
	return int(curr.Sub(prev).Hours() / 24)
}
