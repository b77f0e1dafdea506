// Package prompt assembles the language-locked instruction sent to the
// text generator. Building is pure: the same canonical request always yields
// byte-identical instruction text.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Yates-Labs/satirist/internal/language"
	"github.com/Yates-Labs/satirist/internal/request"
)

var ErrUnknownVariant = errors.New("unknown prompt variant")

// Variant selects between instruction flavours.
type Variant string

const (
	// Standard asks for the statement directly.
	Standard Variant = "standard"
	// SelfRevision additionally asks the model to draft and revise twice
	// before answering, emitting only the final revision.
	SelfRevision Variant = "self-revision"
)

// ParseVariant accepts the configuration spelling of a variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case Standard, "":
		return Standard, nil
	case SelfRevision, "selfrevision", "revise":
		return SelfRevision, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Range is an inclusive character-count range.
type Range struct {
	Min, Max int
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d characters", r.Min, r.Max)
}

var (
	ShortRange = Range{Min: 14, Max: 30}
	LongRange  = Range{Min: 30, Max: 70}
)

// RangeFor returns the target length for a length mode.
func RangeFor(l request.Length) Range {
	if l == request.Short {
		return ShortRange
	}
	return LongRange
}

// Instruction is the pair of role-tagged texts sent upstream.
type Instruction struct {
	System string
	User   string
}

// Build derives the instruction for a canonical request.
func Build(req request.Canonical, v Variant) Instruction {
	return Instruction{
		System: systemText(req.Lang),
		User:   userText(req, v),
	}
}

func systemText(tag language.Tag) string {
	name := language.DisplayName(tag)
	return fmt.Sprintf(
		"You must always write the answer in the application-specified language, %s (LANG=%s), and in no other language. "+
			"Return a single JSON object only, with nothing before or after it. "+
			"Avoid hate speech, slurs and doxxing.",
		name, tag)
}

func userText(req request.Canonical, v Variant) string {
	var b strings.Builder
	name := language.DisplayName(req.Lang)

	b.WriteString(fmt.Sprintf("IMPORTANT: the output language is %s (LANG=%s) only. ", name, req.Lang))
	b.WriteString(fmt.Sprintf("Write only in %s and never mix in any other language.\n\n", name))

	b.WriteString("Write a sharp, biting satirical statement about the word below. ")
	b.WriteString("It must be surprising yet convincing, and funny. ")
	b.WriteString(fmt.Sprintf("Write it in %s.\n\n", name))

	b.WriteString("# Rules\n\n")
	b.WriteString(fmt.Sprintf("- Length: %s.\n", RangeFor(req.Length)))
	b.WriteString("- Register: written language only. Literary, declarative sentences. ")
	b.WriteString("Never conversational, never a monologue. No interjections, no dialogue, no quotation or dialogue markers.\n")
	b.WriteString("- Tone: edgy but harmless.\n")
	b.WriteString("- Safety: no hate speech, no slurs, no personal attacks, no doxxing, no incitement.\n")
	b.WriteString("- Avoid obscure vocabulary. Replace proper nouns with general terms only when needed.\n\n")

	if v == SelfRevision {
		b.WriteString("# Revision protocol (internal)\n\n")
		b.WriteString("1. Write a first draft and treat it as the baseline.\n")
		b.WriteString("2. Revise it once for more surprise and coherence.\n")
		b.WriteString("3. Revise it again, maximizing surprise, coherence and humor together.\n")
		b.WriteString("Output only the final revision. Drafts, notes and reasoning must never appear in the output.\n\n")
	}

	b.WriteString("# Output\n\n")
	b.WriteString("Output ONLY the following JSON, with nothing before or after it:\n")
	b.WriteString(`{"satire":"…","type":"…"}` + "\n")
	b.WriteString("- \"satire\": one or two lines that follow the rules above.\n")
	b.WriteString(fmt.Sprintf("- \"type\": a one-word category such as %s.\n\n", categoryExamples(req.Lang)))

	b.WriteString(fmt.Sprintf("Word: %s", req.Word))

	return b.String()
}

func categoryExamples(tag language.Tag) string {
	return strings.Join([]string{
		language.DefaultCategory(tag),
		language.TopicCategory(tag, language.TopicWork),
		language.TopicCategory(tag, language.TopicLove),
		language.TopicCategory(tag, language.TopicTech),
	}, " / ")
}
