package fallback

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/Yates-Labs/satirist/internal/language"
	"github.com/Yates-Labs/satirist/internal/request"
)

// Rule classifies a word into a topic when Pattern matches.
type Rule struct {
	Topic   language.Topic
	Pattern *regexp.Regexp
}

// Rules are evaluated in order, first match wins.
var Rules = []Rule{
	{
		Topic: language.TopicTech,
		Pattern: regexp.MustCompile(`(?i)\bai\b|a\.i\.|人工知能|ＡＩ|\btech|テクノロジー|テック|スマホ|アプリ|ロボット|\brobot|\bapp\b|` +
			`\bcomputer|コンピュータ|\balgorithm|アルゴリズム|科技|技术|技術|인공지능|기술|технолог|\bintelig[eê]ncia artificial`),
	},
	{
		Topic: language.TopicWork,
		Pattern: regexp.MustCompile(`(?i)上司|\bboss(?:es)?\b|\bchef\b|\bjefe|主管|经理|經理|\bmanager|会議|会社|残業|出社|\bmeeting|` +
			`\boffice\b|\bovertime|상사|회의|начальник|\btrabajo|\btravail|\barbeit`),
	},
	{
		Topic:   language.TopicLove,
		Pattern: regexp.MustCompile(`(?i)恋|愛|爱|\blov(?:e|es|ed|er|ers|ing)\b|\bamor(?:es)?\b|\bamours?\b|\blieb(?:e|en)\b|사랑|любов|\bcinta\b|\başk\b`),
	},
}

// Classify returns the first matching topic for word.
func Classify(word string) (language.Topic, bool) {
	for _, r := range Rules {
		if r.Pattern.MatchString(word) {
			return r.Topic, true
		}
	}
	return 0, false
}

// Templated renders a randomly chosen per-language template.
type Templated struct {
	pick func(n int) int
}

// NewTemplated uses pick to choose a template index in [0, n). A nil pick
// means uniform random choice.
func NewTemplated(pick func(n int) int) *Templated {
	if pick == nil {
		pick = rand.IntN
	}
	return &Templated{pick: pick}
}

func (t *Templated) Fallback(word string, length request.Length, _ request.Style, tag language.Tag) Result {
	word = strings.TrimSpace(word)
	if word == "" {
		word = language.Placeholder(tag)
	}

	tpl := language.TemplatesFor(tag)
	candidates := tpl.Long
	if length == request.Short {
		candidates = tpl.Short
	}

	category := language.DefaultCategory(tag)
	if topic, ok := Classify(word); ok {
		category = language.TopicCategory(tag, topic)
	}

	return Result{
		Satire: fmt.Sprintf(candidates[t.index(len(candidates))], word),
		Type:   category,
	}
}

func (t *Templated) index(n int) int {
	i := t.pick(n)
	if i < 0 || i >= n {
		return 0
	}
	return i
}
