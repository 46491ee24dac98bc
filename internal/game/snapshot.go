package game

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// snapshotFields mirrors State with every field optional so that older or
// partial snapshots can be merged onto defaults.
type snapshotFields struct {
	SelectedCharacterID *string  `json:"selectedCharacterId"`
	CharacterLevel      *int     `json:"characterLevel"`
	PerfectRuns         *int     `json:"perfectRuns"`
	CurrentHP           *int     `json:"currentHP"`
	CaseProgress        *float64 `json:"caseProgress"`
	CurrentChapterIndex *int     `json:"currentChapterIndex"`
	CurrentSceneIndex   *int     `json:"currentSceneIndex"`
}

// Marshal serializes s into the opaque snapshot handed to persistence.
func Marshal(s State) ([]byte, error) {
	return json.Marshal(s)
}

// Restore rebuilds a State from a snapshot. Fields missing from raw keep
// their NewState defaults and out-of-range values are clamped. An empty raw
// yields NewState. On a decode error the defaults are returned with the error.
func Restore(raw []byte) (State, error) {
	s := NewState()
	if len(bytes.TrimSpace(raw)) == 0 {
		return s, nil
	}

	var f snapshotFields
	if err := json.Unmarshal(raw, &f); err != nil {
		return NewState(), fmt.Errorf("decode game snapshot: %w", err)
	}

	if f.SelectedCharacterID != nil {
		s.SelectedCharacterID = *f.SelectedCharacterID
	}
	if f.CharacterLevel != nil {
		s.CharacterLevel = *f.CharacterLevel
	}
	if f.PerfectRuns != nil {
		s.PerfectRuns = *f.PerfectRuns
	}
	if f.CurrentHP != nil {
		s.CurrentHP = *f.CurrentHP
	}
	if f.CaseProgress != nil {
		s.CaseProgress = *f.CaseProgress
	}
	if f.CurrentChapterIndex != nil {
		s.CurrentChapterIndex = *f.CurrentChapterIndex
	}
	if f.CurrentSceneIndex != nil {
		s.CurrentSceneIndex = *f.CurrentSceneIndex
	}
	return s.normalize(), nil
}
