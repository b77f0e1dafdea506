package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Yates-Labs/satirist/internal/language"
	"github.com/Yates-Labs/satirist/internal/prompt"
)

// DefaultTimeout leaves headroom under a 25s platform response ceiling.
const DefaultTimeout = 18 * time.Second

// Result is a usable satire produced by the upstream generator.
type Result struct {
	Satire string `json:"satire"`
	Type   string `json:"type"`
}

// Bounded calls a TextGenerator exactly once under a hard deadline and
// validates what comes back.
type Bounded struct {
	gen     TextGenerator
	model   string
	timeout time.Duration
}

// NewBounded wraps gen. A non-positive timeout means DefaultTimeout.
func NewBounded(gen TextGenerator, model string, timeout time.Duration) *Bounded {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Bounded{gen: gen, model: model, timeout: timeout}
}

// Timeout returns the deadline applied to each call.
func (b *Bounded) Timeout() time.Duration {
	return b.timeout
}

// Model returns the model identifier sent upstream.
func (b *Bounded) Model() string {
	return b.model
}

type reply struct {
	text string
	err  error
}

// Generate performs one bounded attempt. Failures wrap exactly one of
// ErrTimeout, ErrUpstream or ErrUnusableContent.
func (b *Bounded) Generate(ctx context.Context, instr prompt.Instruction, tag language.Tag) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	req := Request{
		Model: b.model,
		Messages: []Message{
			{Role: RoleSystem, Content: instr.System},
			{Role: RoleUser, Content: instr.User},
		},
	}

	// Buffered so the call goroutine can always finish after we stop waiting.
	done := make(chan reply, 1)
	go func() {
		// A panicking provider must not take the process down with it.
		defer func() {
			if rec := recover(); rec != nil {
				done <- reply{err: fmt.Errorf("generator panic: %v", rec)}
			}
		}()
		text, err := b.gen.Generate(ctx, req)
		done <- reply{text: text, err: err}
	}()

	var r reply
	select {
	case r = <-done:
	case <-ctx.Done():
		return Result{}, b.contextFailure(ctx.Err())
	}

	if r.err != nil {
		if ctx.Err() != nil {
			return Result{}, b.contextFailure(ctx.Err())
		}
		return Result{}, fmt.Errorf("%w: %w", ErrUpstream, r.err)
	}

	p := parsePayload(r.text)
	satire := strings.TrimSpace(p.Satire)
	if satire == "" {
		return Result{}, fmt.Errorf("%w: empty satire in %q", ErrUnusableContent, abbreviate(r.text, 200))
	}

	kind := strings.TrimSpace(p.Type)
	if kind == "" {
		kind = language.DefaultCategory(tag)
	}
	return Result{Satire: satire, Type: kind}, nil
}

func (b *Bounded) contextFailure(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s", ErrTimeout, b.timeout)
	}
	return fmt.Errorf("%w: %w", ErrUpstream, err)
}

type payload struct {
	Satire string `json:"satire"`
	Type   string `json:"type"`
}

// parsePayload reads the two-field answer schema. Anything that does not
// parse reads as an empty payload.
func parsePayload(content string) payload {
	s := strings.TrimSpace(content)

	// If content contains fenced code, use the inner block
	if idx := strings.Index(s, "```"); idx >= 0 {
		rest := strings.TrimPrefix(s[idx+3:], "json")
		if j := strings.Index(rest, "```"); j >= 0 {
			s = strings.TrimSpace(rest[:j])
		}
	}

	if p, ok := decodePayload(s); ok {
		return p
	}

	// Tolerate prose around a single object
	if i := strings.Index(s, "{"); i >= 0 {
		if j := strings.LastIndex(s, "}"); j > i {
			if p, ok := decodePayload(s[i : j+1]); ok {
				return p
			}
		}
	}
	return payload{}
}

// decodePayload accepts scalar field values of any JSON type and reads
// them as text.
func decodePayload(s string) (payload, bool) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(s), &fields); err != nil {
		return payload{}, false
	}
	return payload{Satire: scalarText(fields["satire"]), Type: scalarText(fields["type"])}, true
}

func scalarText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func abbreviate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
