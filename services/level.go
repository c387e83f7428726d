// services/level.go - Level Calculator
package services

import "math"

// XPPerLevel is the constant XP cost of each level.
const XPPerLevel = 100

// LevelInfo is the display-ready leveling summary for one XP total.
type LevelInfo struct {
	Level              int `json:"level"`
	XPForNextLevel     int `json:"xp_for_next_level"`
	XPNeededForLevelUp int `json:"xp_needed_for_level_up"`
	ProgressPercentage int `json:"progress_percentage"`
}

// ComputeLevelInfo maps a stored level and cumulative XP total to leveling
// display values. The caller-supplied level is trusted as-is; the percentage
// is clamped into [0, 100] so inconsistent upstream data never renders a
// negative or overflowing progress bar.
func ComputeLevelInfo(level, xp int) LevelInfo {
	if level < 1 {
		level = 1
	}

	floor := (level - 1) * XPPerLevel
	next := level * XPPerLevel
	progress := xp - floor

	pct := int(math.Round(float64(progress) / float64(XPPerLevel) * 100))
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	return LevelInfo{
		Level:              level,
		XPForNextLevel:     next,
		XPNeededForLevelUp: XPPerLevel,
		ProgressPercentage: pct,
	}
}

// DeriveLevel recomputes a level from a cumulative XP total. Award paths use
// this to keep the stored level column consistent with the ledger.
func DeriveLevel(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/XPPerLevel + 1
}
