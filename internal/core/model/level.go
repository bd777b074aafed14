package model

import "math"

// Progression curve constants.
const (
	XPPerMinute   = 10
	BaseXPLevel   = 100.0
	LevelExponent = 1.5
)

// XPForMinutes converts a completed session into base XP.
func XPForMinutes(minutes int) int {
	return int(math.Floor(float64(minutes) * XPPerMinute))
}

// LevelFor computes floor((lifetimeXP / BaseXPLevel) ^ (1/LevelExponent)) + 1.
func LevelFor(lifetimeXP int) int {
	if lifetimeXP <= 0 {
		return 1
	}
	return int(math.Floor(math.Pow(float64(lifetimeXP)/BaseXPLevel, 1/LevelExponent))) + 1
}

// MinXPForLevel returns the smallest lifetime XP at which LevelFor reaches level.
// The estimate from the inverse curve is corrected against LevelFor so the
// threshold agrees with the floor formula exactly.
func MinXPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	threshold := int(math.Ceil(BaseXPLevel * math.Pow(float64(level-1), LevelExponent)))
	for threshold > 0 && LevelFor(threshold-1) >= level {
		threshold--
	}
	for LevelFor(threshold) < level {
		threshold++
	}
	return threshold
}

// LevelProgress describes the distance to the next level.
type LevelProgress struct {
	Level        int
	CurrentFloor int
	NextLevelXP  int
	XPToNext     int
	Fraction     float64
}

// ProgressFor reports where lifetimeXP sits between the current and next level.
func ProgressFor(lifetimeXP, level int) LevelProgress {
	if computed := LevelFor(lifetimeXP); computed > level {
		level = computed
	}
	floor := MinXPForLevel(level)
	next := MinXPForLevel(level + 1)
	progress := LevelProgress{
		Level:        level,
		CurrentFloor: floor,
		NextLevelXP:  next,
		XPToNext:     next - lifetimeXP,
	}
	if progress.XPToNext < 0 {
		progress.XPToNext = 0
	}
	if span := next - floor; span > 0 {
		progress.Fraction = float64(lifetimeXP-floor) / float64(span)
	}
	if progress.Fraction < 0 {
		progress.Fraction = 0
	}
	if progress.Fraction > 1 {
		progress.Fraction = 1
	}
	return progress
}
