package i18n

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextGet(t *testing.T) {
	txt := Text{English: "hello", Vietnamese: "xin chào"}
	assert.Equal(t, "hello", txt.Get(English))
	assert.Equal(t, "xin chào", txt.Get(Vietnamese))
	assert.Equal(t, "hello", txt.Get(Language("fr")), "falls back to default")

	onlyVI := Text{Vietnamese: "chỉ"}
	assert.Equal(t, "chỉ", onlyVI.Get(English), "falls back to any translation")
	assert.Equal(t, "", Text{}.Get(English))
}

func TestTextUnmarshal(t *testing.T) {
	var obj Text
	require.NoError(t, json.Unmarshal([]byte(`{"en":"a","vi":"b"}`), &obj))
	assert.Equal(t, Text{English: "a", Vietnamese: "b"}, obj)

	var plain Text
	require.NoError(t, json.Unmarshal([]byte(`"just english"`), &plain))
	assert.Equal(t, "just english", plain.Get(English))

	var bad Text
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

func TestNext(t *testing.T) {
	langs := []Language{English, Vietnamese}
	assert.Equal(t, Vietnamese, Next(English, langs))
	assert.Equal(t, English, Next(Vietnamese, langs))
	assert.Equal(t, English, Next(Language("fr"), langs))
	assert.Equal(t, English, Next(English, nil))
}

func TestT(t *testing.T) {
	assert.Equal(t, "Submit", T(KeySubmit, English))
	assert.Equal(t, "Nộp bài", T(KeySubmit, Vietnamese))
	assert.Equal(t, "missing_key", T(Key("missing_key"), English))
}

func TestLookup(t *testing.T) {
	tests := []struct {
		in   string
		want Language
		ok   bool
	}{
		{"", English, true},
		{"en", English, true},
		{" VI ", Vietnamese, true},
		{"C.UTF-8", "", false},
		{"en_US.UTF-8", "", false},
		{"fr", "", false},
	}
	for _, tt := range tests {
		got, ok := Lookup(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	assert.Equal(t, "en, vi", SupportedList())
}
