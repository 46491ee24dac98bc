package game

// Tuning constants for the progression rules.
const (
	MaxHP               = 100
	HPLoss              = 10
	PenaltyProgressLoss = 15
	HPResetOnPenalty    = 50
	MaxProgress         = 100.0

	MinLevel = 1
	MaxLevel = 3
)

// State is the single per-user game record.
type State struct {
	// SelectedCharacterID is empty until a detective has been chosen.
	SelectedCharacterID string `json:"selectedCharacterId"`

	// CharacterLevel is 1..3 and never decreases for a character.
	CharacterLevel int `json:"characterLevel"`

	// PerfectRuns counts graded tests scored at 100%.
	PerfectRuns int `json:"perfectRuns"`

	// CurrentHP is the "credibility" meter, 0..100.
	CurrentHP int `json:"currentHP"`

	// CaseProgress is 0..100 and may be fractional.
	CaseProgress float64 `json:"caseProgress"`

	CurrentChapterIndex int `json:"currentChapterIndex"`
	CurrentSceneIndex   int `json:"currentSceneIndex"`
}

// NewState returns the initial state: no character, level 1, full HP.
func NewState() State {
	return State{
		CharacterLevel: MinLevel,
		CurrentHP:      MaxHP,
	}
}

// HasCharacter reports whether a detective has been chosen.
func (s State) HasCharacter() bool {
	return s.SelectedCharacterID != ""
}

// SelectCharacter fully resets progress and sets the new character.
func (s State) SelectCharacter(id string) State {
	next := NewState()
	next.SelectedCharacterID = id
	return next
}

// ClearCharacter forgets the chosen character but keeps every counter.
func (s State) ClearCharacter() State {
	s.SelectedCharacterID = ""
	return s
}

// ResetForNewTest refills HP and empties case progress.
func (s State) ResetForNewTest() State {
	s.CurrentHP = MaxHP
	s.CaseProgress = 0
	return s
}

// ApplyAnswerEffect awards progress for a correct unit or costs HP for an
// incorrect one. Both meters saturate at their bounds.
func (s State) ApplyAnswerEffect(correct bool, progressGain float64) State {
	if correct {
		s.CaseProgress = clampProgress(s.CaseProgress + progressGain)
	} else {
		s.CurrentHP = clampHP(s.CurrentHP - HPLoss)
	}
	return s
}

// RecordPerfectRun counts a perfect test and recomputes the level.
func (s State) RecordPerfectRun() State {
	s.PerfectRuns++
	s.CharacterLevel = LevelFor(s.PerfectRuns, s.CharacterLevel)
	return s
}

// ApplyPenaltyAndReset rolls back case progress and restores HP to a
// non-zero floor.
func (s State) ApplyPenaltyAndReset() State {
	s.CaseProgress = clampProgress(s.CaseProgress - PenaltyProgressLoss)
	s.CurrentHP = HPResetOnPenalty
	return s
}

// StartChapter moves the story cursor to the start of a chapter and refills HP.
func (s State) StartChapter(index int) State {
	s.CurrentChapterIndex = index
	s.CurrentSceneIndex = 0
	s.CurrentHP = MaxHP
	return s
}

// AdvanceStory moves the story cursor to the next scene.
func (s State) AdvanceStory() State {
	s.CurrentSceneIndex++
	return s
}

// normalize clamps every field into its valid range.
func (s State) normalize() State {
	s.CurrentHP = clampHP(s.CurrentHP)
	s.CaseProgress = clampProgress(s.CaseProgress)
	if s.PerfectRuns < 0 {
		s.PerfectRuns = 0
	}
	if s.CharacterLevel < MinLevel {
		s.CharacterLevel = MinLevel
	}
	if s.CharacterLevel > MaxLevel {
		s.CharacterLevel = MaxLevel
	}
	if s.CurrentChapterIndex < 0 {
		s.CurrentChapterIndex = 0
	}
	if s.CurrentSceneIndex < 0 {
		s.CurrentSceneIndex = 0
	}
	return s
}

func clampHP(hp int) int {
	if hp < 0 {
		return 0
	}
	if hp > MaxHP {
		return MaxHP
	}
	return hp
}

func clampProgress(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > MaxProgress {
		return MaxProgress
	}
	return p
}
