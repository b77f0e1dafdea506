package request

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yates-Labs/satirist/internal/language"
)

func TestNormalize_EmptyWord(t *testing.T) {
	for _, word := range []string{"", "   ", "\t\n", "(短め)", " [printer] "} {
		_, err := Normalize(Raw{Word: word})
		if !errors.Is(err, ErrValidation) {
			t.Errorf("Normalize(%q): expected ErrValidation, got %v", word, err)
		}
	}
}

func TestNormalize_Defaults(t *testing.T) {
	got, err := Normalize(Raw{Word: "  会議  "})
	require.NoError(t, err)

	assert.Equal(t, Canonical{
		Word:   "会議",
		Lang:   language.Japanese,
		Length: Long,
		Style:  Smile,
	}, got)
}

func TestNormalize_LengthFromTrailingAnnotation(t *testing.T) {
	got, err := Normalize(Raw{Word: "boss(長め)"})
	require.NoError(t, err)
	assert.Equal(t, "boss", got.Word)
	assert.Equal(t, Long, got.Length)

	got, err = Normalize(Raw{Word: "boss（短め・プリンター）"})
	require.NoError(t, err)
	assert.Equal(t, "boss", got.Word)
	assert.Equal(t, Short, got.Length)
	assert.Equal(t, Printer, got.Style)

	got, err = Normalize(Raw{Word: "deadline (short)"})
	require.NoError(t, err)
	assert.Equal(t, "deadline", got.Word)
	assert.Equal(t, Short, got.Length)
	assert.Equal(t, Printer, got.Style, "short length should derive printer style")

	for _, word := range []string{"boss(短め)(プリンター)", "boss(短め) [printer]"} {
		got, err = Normalize(Raw{Word: word})
		require.NoError(t, err)
		assert.Equal(t, "boss", got.Word, "word %q", word)
		assert.Equal(t, Short, got.Length, "word %q", word)
		assert.Equal(t, Printer, got.Style, "word %q", word)
	}
}

func TestNormalize_BracketedWordsAreNotAnnotations(t *testing.T) {
	tests := []struct {
		word       string
		wantLength Length
	}{
		{"Texas (Longhorn)", Long},
		{"strawberry (shortcake)", Long},
		{"AI (long", Long},
		{"recipe (short ribs)", Long},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, err := Normalize(Raw{Word: tt.word})
			require.NoError(t, err)
			assert.Equal(t, tt.word, got.Word)
			assert.Equal(t, tt.wantLength, got.Length)
			assert.Equal(t, Smile, got.Style)
		})
	}
}

func TestNormalize_ExplicitLengthWins(t *testing.T) {
	got, err := Normalize(Raw{Word: "boss(長め)", Length: "SHORT"})
	require.NoError(t, err)
	assert.Equal(t, Short, got.Length)

	got, err = Normalize(Raw{Word: "boss(短め)", Length: "medium"})
	require.NoError(t, err)
	assert.Equal(t, Short, got.Length, "invalid explicit length should fall through to the annotation")
}

func TestNormalize_Style(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
		want Style
	}{
		{"explicit style", Raw{Word: "x", Style: "printer"}, Printer},
		{"screen field", Raw{Word: "x", Screen: "Smile", Length: "short"}, Smile},
		{"mode field", Raw{Word: "x", Mode: "printer"}, Printer},
		{"invalid explicit falls through", Raw{Word: "x", Style: "laser", Length: "short"}, Printer},
		{"bracketed keyword", Raw{Word: "[スマイル] 残業", Length: "short"}, Smile},
		{"bracketed generic", Raw{Word: "overtime (printer)"}, Printer},
		{"bare word", Raw{Word: "printer ink"}, Printer},
		{"derived long", Raw{Word: "x", Length: "long"}, Smile},
		{"derived short", Raw{Word: "x", Length: "short"}, Printer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Style)
		})
	}
}

func TestNormalize_StyleAnnotationStripped(t *testing.T) {
	got, err := Normalize(Raw{Word: "【プリンター】残業"})
	require.NoError(t, err)
	assert.Equal(t, "残業", got.Word)
	assert.Equal(t, Printer, got.Style)
}

func TestNormalize_LanguageFieldOrder(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
		want language.Tag
	}{
		{"lang first", Raw{Word: "x", Lang: "fr", Language: "de", Locale: "es"}, language.French},
		{"language second", Raw{Word: "x", Language: "de", Locale: "es"}, language.German},
		{"locale last", Raw{Word: "x", Locale: "es-MX"}, language.Spanish},
		{"blank skipped", Raw{Word: "x", Lang: "  ", Locale: "ko"}, language.Korean},
		{"style keyword is not a language", Raw{Word: "x", Mode: "printer", Locale: "vi"}, language.Vietnamese},
		{"unknown maps to default", Raw{Word: "x", Lang: "tlh"}, language.Default},
		{"absent maps to home", Raw{Word: "x"}, language.Home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Lang)
		})
	}
}
