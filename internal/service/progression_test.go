package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLevelInfo(t *testing.T) {
	// The curve: level 1 needs 50, then 70, 98, 137, 191.
	tests := []struct {
		name      string
		xp        int
		level     int
		intoLevel int
		perLevel  int
	}{
		{"fresh profile", 0, 1, 0, 50},
		{"one short of level two", 49, 1, 49, 50},
		{"exactly level two", 50, 2, 0, 70},
		{"one short of level three", 119, 2, 69, 70},
		{"exactly level three", 120, 3, 0, 98},
		{"top of level three", 217, 3, 97, 98},
		{"exactly level four", 218, 4, 0, 137},
		{"exactly level five", 355, 5, 0, 191},
		{"negative clamps to zero", -10, 1, 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ComputeLevelInfo(tt.xp)
			assert.Equal(t, tt.level, info.Level)
			assert.Equal(t, tt.intoLevel, info.IntoLevel)
			assert.Equal(t, tt.perLevel, info.PerLevel)
		})
	}
}

func TestAwardXP(t *testing.T) {
	t.Run("crossing a boundary levels up", func(t *testing.T) {
		newXP, leveledUp, newLevel := AwardXP(45, 10)
		assert.Equal(t, 55, newXP)
		assert.True(t, leveledUp)
		assert.Equal(t, 2, newLevel)
	})

	t.Run("staying within a level does not", func(t *testing.T) {
		newXP, leveledUp, newLevel := AwardXP(10, 20)
		assert.Equal(t, 30, newXP)
		assert.False(t, leveledUp)
		assert.Equal(t, 1, newLevel)
	})

	t.Run("a large award can skip levels", func(t *testing.T) {
		newXP, leveledUp, newLevel := AwardXP(0, 120)
		assert.Equal(t, 120, newXP)
		assert.True(t, leveledUp)
		assert.Equal(t, 3, newLevel)
	})

	t.Run("non-positive amounts are a no-op", func(t *testing.T) {
		newXP, leveledUp, newLevel := AwardXP(30, 0)
		assert.Equal(t, 30, newXP)
		assert.False(t, leveledUp)
		assert.Equal(t, 1, newLevel)

		newXP, leveledUp, _ = AwardXP(30, -5)
		assert.Equal(t, 30, newXP)
		assert.False(t, leveledUp)
	})
}
