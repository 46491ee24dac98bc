package game

// levelThresholds maps perfect-run counts to the level they unlock.
var levelThresholds = []struct {
	runs  int
	level int
}{
	{10, 3},
	{5, 2},
}

// LevelFor returns the level earned with perfectRuns perfect tests. The
// result is never below current, so levels only go up.
func LevelFor(perfectRuns, current int) int {
	for _, t := range levelThresholds {
		if perfectRuns >= t.runs {
			if t.level > current {
				return t.level
			}
			return current
		}
	}
	return current
}

// NextLevelThreshold returns the perfect-run count that unlocks the next
// level, or 0 when the character is already at MaxLevel.
func NextLevelThreshold(level int) int {
	for i := len(levelThresholds) - 1; i >= 0; i-- {
		if levelThresholds[i].level > level {
			return levelThresholds[i].runs
		}
	}
	return 0
}
