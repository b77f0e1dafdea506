// Package request turns the loosely-typed inbound fields of a generation
// request into a canonical request the rest of the pipeline can trust.
package request

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Yates-Labs/satirist/internal/language"
)

var ErrValidation = errors.New("bad request")

// Length governs the target character range of the generated statement.
type Length string

const (
	Short Length = "short"
	Long  Length = "long"
)

// Style is a presentation hint from the client screen. It is passed through
// and only influences defaults.
type Style string

const (
	Printer Style = "printer"
	Smile   Style = "smile"
)

// Raw carries the inbound fields as sent by clients. Several fields are
// alternative spellings of the same concept.
type Raw struct {
	Word     string `json:"word"`
	Lang     string `json:"lang"`
	Language string `json:"language"`
	Mode     string `json:"mode"`
	Screen   string `json:"screen"`
	Locale   string `json:"locale"`
	Length   string `json:"length"`
	Style    string `json:"style"`
}

// Canonical is a validated request. Word is never empty.
type Canonical struct {
	Word   string
	Lang   language.Tag
	Length Length
	Style  Style
}

// languageFields lists, in priority order, the fields that may carry a
// language hint. First non-empty wins.
func languageFields(r Raw) []string {
	return []string{r.Lang, r.Language, r.Mode, r.Screen, r.Locale}
}

// styleFields lists, in priority order, the fields that may carry an
// explicit style.
func styleFields(r Raw) []string {
	return []string{r.Style, r.Screen, r.Mode}
}

var (
	// A length annotation appended by the client UI, e.g. "boss(長め)" or
	// "boss (short, printer)". The bracket holds only the keyword and an
	// optional style keyword, and must be closed.
	lengthAnnotation = regexp.MustCompile(`(?i)\s*[(（]\s*(短め|長め|short|long)` +
		`(?:\s*[,、・/]\s*(?:プリンター|スマイル|printer|smile))?\s*[)）]\s*$`)

	// Bracketed style keywords may appear anywhere in the word.
	styleAnnotation = regexp.MustCompile(`(?i)[\[(（【]\s*(プリンター|スマイル|printer|smile)\s*[\])）】]`)

	// Bare style words, only used for inference, never stripped.
	printerWord = regexp.MustCompile(`(?i)\bprinter\b|プリンター`)
	smileWord   = regexp.MustCompile(`(?i)\bsmile\b|スマイル`)
)

// Normalize validates raw input and resolves every hint to a canonical value.
func Normalize(r Raw) (Canonical, error) {
	raw := strings.TrimSpace(r.Word)
	if raw == "" {
		return Canonical{}, fmt.Errorf("%w: word is required", ErrValidation)
	}

	word := StripAnnotations(raw)
	if word == "" {
		return Canonical{}, fmt.Errorf("%w: word is empty once annotations are removed", ErrValidation)
	}

	length := resolveLength(r.Length, styleAnnotation.ReplaceAllString(raw, ""))
	return Canonical{
		Word:   word,
		Lang:   resolveLanguage(r),
		Length: length,
		Style:  resolveStyle(r, raw, length),
	}, nil
}

// StripAnnotations removes UI chrome (length and style markers) from a word.
// Style markers go first so a trailing length marker is exposed.
func StripAnnotations(word string) string {
	word = styleAnnotation.ReplaceAllString(word, "")
	word = lengthAnnotation.ReplaceAllString(strings.TrimSpace(word), "")
	return strings.TrimSpace(word)
}

func resolveLanguage(r Raw) language.Tag {
	for _, v := range languageFields(r) {
		v = strings.TrimSpace(v)
		if v == "" || parseStyle(v) != "" {
			continue
		}
		return language.Resolve(v)
	}
	return language.Resolve("")
}

// resolveLength expects word with style markers already removed.
func resolveLength(explicit, word string) Length {
	if l := parseLength(explicit); l != "" {
		return l
	}
	if m := lengthAnnotation.FindStringSubmatch(strings.TrimSpace(word)); m != nil {
		switch strings.ToLower(m[1]) {
		case "短め", "short":
			return Short
		case "長め", "long":
			return Long
		}
	}
	return Long
}

func resolveStyle(r Raw, raw string, length Length) Style {
	for _, v := range styleFields(r) {
		if s := parseStyle(v); s != "" {
			return s
		}
	}

	if m := styleAnnotation.FindStringSubmatch(raw); m != nil {
		switch strings.ToLower(m[1]) {
		case "プリンター", "printer":
			return Printer
		default:
			return Smile
		}
	}
	switch {
	case printerWord.MatchString(raw):
		return Printer
	case smileWord.MatchString(raw):
		return Smile
	}

	if length == Short {
		return Printer
	}
	return Smile
}

func parseLength(v string) Length {
	switch Length(strings.ToLower(strings.TrimSpace(v))) {
	case Short:
		return Short
	case Long:
		return Long
	}
	return ""
}

func parseStyle(v string) Style {
	switch Style(strings.ToLower(strings.TrimSpace(v))) {
	case Printer:
		return Printer
	case Smile:
		return Smile
	}
	return ""
}
