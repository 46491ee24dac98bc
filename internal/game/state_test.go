package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewState(t *testing.T) {
	s := NewState()
	assert.False(t, s.HasCharacter())
	assert.Equal(t, 1, s.CharacterLevel)
	assert.Equal(t, 0, s.PerfectRuns)
	assert.Equal(t, 100, s.CurrentHP)
	assert.Equal(t, 0.0, s.CaseProgress)
	assert.Equal(t, 0, s.CurrentChapterIndex)
	assert.Equal(t, 0, s.CurrentSceneIndex)
}

func TestSelectCharacter_FullReset(t *testing.T) {
	s := State{
		SelectedCharacterID: "conan",
		CharacterLevel:      3,
		PerfectRuns:         12,
		CurrentHP:           40,
		CaseProgress:        70,
		CurrentChapterIndex: 1,
		CurrentSceneIndex:   3,
	}
	got := s.SelectCharacter("haibara")
	want := NewState()
	want.SelectedCharacterID = "haibara"
	assert.Equal(t, want, got)
}

func TestClearCharacter_KeepsCounters(t *testing.T) {
	s := State{SelectedCharacterID: "conan", CharacterLevel: 2, PerfectRuns: 6, CurrentHP: 80}
	got := s.ClearCharacter()
	assert.False(t, got.HasCharacter())
	assert.Equal(t, 2, got.CharacterLevel)
	assert.Equal(t, 6, got.PerfectRuns)
}

func TestResetForNewTest(t *testing.T) {
	s := State{CurrentHP: 20, CaseProgress: 55, PerfectRuns: 3, CharacterLevel: 1}
	got := s.ResetForNewTest()
	assert.Equal(t, 100, got.CurrentHP)
	assert.Equal(t, 0.0, got.CaseProgress)
	assert.Equal(t, 3, got.PerfectRuns)
}

func TestApplyAnswerEffect_ProgressCeiling(t *testing.T) {
	s := NewState()
	for i := 0; i < 50; i++ {
		s = s.ApplyAnswerEffect(true, 12.5)
		assert.LessOrEqual(t, s.CaseProgress, 100.0)
	}
	assert.Equal(t, 100.0, s.CaseProgress)
	assert.Equal(t, 100, s.CurrentHP, "correct answers never cost HP")
}

func TestApplyAnswerEffect_HPFloor(t *testing.T) {
	s := NewState()
	for i := 0; i < 10; i++ {
		s = s.ApplyAnswerEffect(false, 0)
	}
	assert.Equal(t, 0, s.CurrentHP)

	s = s.ApplyAnswerEffect(false, 50)
	assert.Equal(t, 0, s.CurrentHP)
	assert.Equal(t, 0.0, s.CaseProgress, "incorrect answers never award progress")
}

func TestRecordPerfectRun_Levels(t *testing.T) {
	s := NewState()
	for i := 1; i <= 12; i++ {
		s = s.RecordPerfectRun()
		assert.Equal(t, i, s.PerfectRuns)
		switch {
		case i < 5:
			assert.Equal(t, 1, s.CharacterLevel, "run %d", i)
		case i < 10:
			assert.Equal(t, 2, s.CharacterLevel, "run %d", i)
		default:
			assert.Equal(t, 3, s.CharacterLevel, "run %d", i)
		}
	}
}

func TestRecordPerfectRun_NeverDecreasesLevel(t *testing.T) {
	s := State{CharacterLevel: 3, PerfectRuns: 0, CurrentHP: 100}
	s = s.RecordPerfectRun()
	assert.Equal(t, 3, s.CharacterLevel)
}

func TestPenaltyScenario(t *testing.T) {
	s := NewState()
	for i := 0; i < 10; i++ {
		s = s.ApplyAnswerEffect(false, 0)
	}
	assert.Equal(t, 0, s.CurrentHP)

	s = s.ApplyPenaltyAndReset()
	assert.Equal(t, 0.0, s.CaseProgress)
	assert.Equal(t, 50, s.CurrentHP)

	s = State{CurrentHP: 0, CaseProgress: 40}.ApplyPenaltyAndReset()
	assert.Equal(t, 25.0, s.CaseProgress)
	assert.Equal(t, 50, s.CurrentHP)
}

func TestStoryCursor(t *testing.T) {
	s := State{CurrentHP: 30, CurrentChapterIndex: 0, CurrentSceneIndex: 4}
	s = s.StartChapter(1)
	assert.Equal(t, 1, s.CurrentChapterIndex)
	assert.Equal(t, 0, s.CurrentSceneIndex)
	assert.Equal(t, 100, s.CurrentHP)

	s = s.AdvanceStory().AdvanceStory()
	assert.Equal(t, 2, s.CurrentSceneIndex)
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		runs, current, want int
	}{
		{0, 1, 1},
		{4, 1, 1},
		{5, 1, 2},
		{9, 1, 2},
		{10, 1, 3},
		{10, 2, 3},
		{3, 2, 2},
		{6, 3, 3},
	}
	for _, tt := range tests {
		got := LevelFor(tt.runs, tt.current)
		if got != tt.want {
			t.Errorf("LevelFor(%d, %d) = %d, want %d", tt.runs, tt.current, got, tt.want)
		}
	}
}

func TestNextLevelThreshold(t *testing.T) {
	assert.Equal(t, 5, NextLevelThreshold(1))
	assert.Equal(t, 10, NextLevelThreshold(2))
	assert.Equal(t, 0, NextLevelThreshold(3))
}
