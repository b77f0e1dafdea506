package fallback

import (
	"fmt"
	"strings"

	"github.com/Yates-Labs/satirist/internal/language"
	"github.com/Yates-Labs/satirist/internal/request"
)

const (
	genericPlaceholder = "this"
	genericShort       = "%s: the satire engine is resting."
	genericLong        = "%s: the satire engine is catching its breath, so this is all the irony on offer for now."
)

// Generic ignores per-language templates and returns a fixed phrase.
type Generic struct{}

func (Generic) Fallback(word string, length request.Length, _ request.Style, tag language.Tag) Result {
	word = strings.TrimSpace(word)
	if word == "" {
		word = genericPlaceholder
	}

	phrase := genericLong
	if length == request.Short {
		phrase = genericShort
	}
	return Result{
		Satire: fmt.Sprintf(phrase, word),
		Type:   language.DefaultCategory(tag),
	}
}
