package language

import (
	"regexp"
	"slices"
	"strings"

	xlanguage "golang.org/x/text/language"
)

// Tag is a canonical output-language code as understood by the client app.
// Chinese uses Android resource qualifiers (zh-rCN, zh-rTW).
type Tag string

const (
	Japanese           Tag = "ja"
	English            Tag = "en"
	ChineseSimplified  Tag = "zh-rCN"
	ChineseTraditional Tag = "zh-rTW"
	Spanish            Tag = "es"
	French             Tag = "fr"
	Portuguese         Tag = "pt"
	German             Tag = "de"
	Korean             Tag = "ko"
	Hindi              Tag = "hi"
	Indonesian         Tag = "id"
	Turkish            Tag = "tr"
	Russian            Tag = "ru"
	Bengali            Tag = "bn"
	Swahili            Tag = "sw"
	Arabic             Tag = "ar"
	Marathi            Tag = "mr"
	Telugu             Tag = "te"
	Tamil              Tag = "ta"
	Vietnamese         Tag = "vi"
)

const (
	// Home is used when the caller supplies no language at all.
	Home = Japanese
	// Default is used when the caller supplies a language we cannot serve.
	Default = English
)

// Topic is a subject area a word can be classified into.
type Topic int

const (
	TopicTech Topic = iota
	TopicWork
	TopicLove
)

func (t Topic) String() string {
	switch t {
	case TopicTech:
		return "tech"
	case TopicWork:
		return "work"
	case TopicLove:
		return "love"
	default:
		return "unknown"
	}
}

// Templates are fallback sentences for one language. Each text carries a
// single %s verb where the word is substituted.
type Templates struct {
	Short []string
	Long  []string
}

type entry struct {
	tag         Tag
	name        string // endonym shown to the model
	category    string // default category label
	placeholder string // stands in for an empty word
	topics      [3]string
	templates   Templates
}

// Index maps built at init time.
var (
	byTag  map[Tag]*entry
	byFold map[string]*entry
	order  []Tag
)

func init() {
	byTag = make(map[Tag]*entry, len(entries))
	byFold = make(map[string]*entry, len(entries))
	order = make([]Tag, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		byTag[e.tag] = e
		byFold[strings.ToLower(string(e.tag))] = e
		order = append(order, e.tag)
	}
}

// androidRegion matches the "-rXX" region form used by Android resource
// directories, e.g. "pt-rBR".
var androidRegion = regexp.MustCompile(`-r([A-Za-z]{2})$`)

// Resolve maps a raw language hint to a supported tag. It never fails:
// an empty hint yields Home and anything unrecognized yields Default.
// Resolve is idempotent on its own output.
func Resolve(raw string) Tag {
	t := strings.ReplaceAll(strings.TrimSpace(raw), "_", "-")
	if t == "" {
		return Home
	}
	if e, ok := byFold[strings.ToLower(t)]; ok {
		return e.tag
	}

	t = androidRegion.ReplaceAllString(t, "-$1")
	parsed, err := xlanguage.Parse(t)
	if err != nil {
		return Default
	}

	base, _ := parsed.Base()
	if base.String() == "zh" {
		// Script() infers the likely script from the region (TW, HK, MO -> Hant).
		if script, _ := parsed.Script(); script.String() == "Hant" {
			return ChineseTraditional
		}
		return ChineseSimplified
	}
	if e, ok := byFold[base.String()]; ok {
		return e.tag
	}
	return Default
}

// Supported reports whether t is a tag of the registry.
func Supported(t Tag) bool {
	_, ok := byTag[t]
	return ok
}

// Tags returns every supported tag in registry order.
func Tags() []Tag {
	return slices.Clone(order)
}

// lookup never returns nil; tags outside the registry read as Default.
func lookup(t Tag) *entry {
	if e, ok := byTag[t]; ok {
		return e
	}
	return byTag[Default]
}

// DisplayName returns the language's own name for itself.
func DisplayName(t Tag) string {
	return lookup(t).name
}

// DefaultCategory returns the generic "social satire" label in language t.
func DefaultCategory(t Tag) string {
	return lookup(t).category
}

// TopicCategory returns the localized category label for a topic.
func TopicCategory(t Tag, topic Topic) string {
	e := lookup(t)
	if topic < 0 || int(topic) >= len(e.topics) || e.topics[topic] == "" {
		return e.category
	}
	return e.topics[topic]
}

// Placeholder returns a neutral pronoun used in place of an empty word.
func Placeholder(t Tag) string {
	return lookup(t).placeholder
}

// TemplatesFor returns copies of the fallback templates for t.
func TemplatesFor(t Tag) Templates {
	e := lookup(t)
	return Templates{
		Short: slices.Clone(e.templates.Short),
		Long:  slices.Clone(e.templates.Long),
	}
}
