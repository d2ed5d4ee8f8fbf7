package service

import (
	"math"

	"github.com/kotobadev/verb-trainer-bot/internal/domain/entities"
)

// Leveling curve: level 1 needs 50 XP, every next level needs 1.4x more
// (floored). The curve is fixed for save-compatibility with existing
// profiles.
const (
	baseLevelRequirement = 50
	levelGrowthFactor    = 1.4
)

// ComputeLevelInfo resolves a total XP value into a level, the progress
// within that level, and the requirement to clear it. Level is always
// recomputed from scratch and never stored, so it cannot drift.
func ComputeLevelInfo(xp int) entities.LevelInfo {
	level := 1
	requirement := baseLevelRequirement
	remaining := xp
	if remaining < 0 {
		remaining = 0
	}

	for remaining >= requirement {
		remaining -= requirement
		level++
		requirement = int(math.Floor(float64(requirement) * levelGrowthFactor))
	}

	return entities.LevelInfo{
		Level:     level,
		IntoLevel: remaining,
		PerLevel:  requirement,
	}
}

// AwardXP adds amount to currentXP and reports whether the addition crossed
// a level boundary. Non-positive amounts are a no-op, not an error: XP only
// ever increases.
func AwardXP(currentXP, amount int) (newXP int, leveledUp bool, newLevel int) {
	before := ComputeLevelInfo(currentXP)
	if amount <= 0 {
		return currentXP, false, before.Level
	}

	newXP = currentXP + amount
	after := ComputeLevelInfo(newXP)

	return newXP, after.Level > before.Level, after.Level
}
