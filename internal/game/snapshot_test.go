package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestore_Empty(t *testing.T) {
	s, err := Restore(nil)
	require.NoError(t, err)
	assert.Equal(t, NewState(), s)

	s, err = Restore([]byte("   "))
	require.NoError(t, err)
	assert.Equal(t, NewState(), s)
}

func TestRestore_RoundTrip(t *testing.T) {
	want := State{
		SelectedCharacterID: "hattori",
		CharacterLevel:      2,
		PerfectRuns:         7,
		CurrentHP:           60,
		CaseProgress:        33.5,
		CurrentChapterIndex: 1,
		CurrentSceneIndex:   2,
	}
	raw, err := Marshal(want)
	require.NoError(t, err)

	got, err := Restore(raw)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRestore_PartialSnapshotKeepsDefaults(t *testing.T) {
	got, err := Restore([]byte(`{"selectedCharacterId":"conan","perfectRuns":3}`))
	require.NoError(t, err)

	want := NewState()
	want.SelectedCharacterID = "conan"
	want.PerfectRuns = 3
	assert.Equal(t, want, got)
}

func TestRestore_NullCharacter(t *testing.T) {
	got, err := Restore([]byte(`{"selectedCharacterId":null,"currentHP":70}`))
	require.NoError(t, err)
	assert.False(t, got.HasCharacter())
	assert.Equal(t, 70, got.CurrentHP)
}

func TestRestore_ClampsOutOfRange(t *testing.T) {
	got, err := Restore([]byte(`{"currentHP":250,"caseProgress":-4,"characterLevel":9,"currentSceneIndex":-2}`))
	require.NoError(t, err)
	assert.Equal(t, 100, got.CurrentHP)
	assert.Equal(t, 0.0, got.CaseProgress)
	assert.Equal(t, 3, got.CharacterLevel)
	assert.Equal(t, 0, got.CurrentSceneIndex)
}

func TestRestore_Corrupt(t *testing.T) {
	got, err := Restore([]byte(`{not json`))
	assert.Error(t, err)
	assert.Equal(t, NewState(), got)
}
