package generation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/Yates-Labs/satirist/internal/language"
	"github.com/Yates-Labs/satirist/internal/prompt"
)

func testInstruction() prompt.Instruction {
	return prompt.Instruction{System: "system text", User: "user text\n\nWord: AI"}
}

func TestBounded_Success(t *testing.T) {
	mock := NewMockGenerator(`{"satire":"  AI is a deadline disguised as hope.  ","type":" Tech satire "}`)
	b := NewBounded(mock, "test-model", time.Second)

	res, err := b.Generate(context.Background(), testInstruction(), language.English)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Satire != "AI is a deadline disguised as hope." {
		t.Errorf("satire not trimmed: %q", res.Satire)
	}
	if res.Type != "Tech satire" {
		t.Errorf("unexpected type: %q", res.Type)
	}

	if mock.Calls() != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", mock.Calls())
	}
	req := mock.LastRequest()
	if req.Model != "test-model" {
		t.Errorf("expected model test-model, got %s", req.Model)
	}
	if len(req.Messages) != 2 || req.Messages[0].Role != RoleSystem || req.Messages[1].Role != RoleUser {
		t.Fatalf("unexpected messages: %+v", req.Messages)
	}
	if req.Messages[0].Content != "system text" {
		t.Errorf("system message not forwarded: %q", req.Messages[0].Content)
	}
}

func TestBounded_MissingTypeUsesDefaultCategory(t *testing.T) {
	mock := NewMockGenerator(`{"satire":"会議は結論を先送りする儀式である。"}`)
	b := NewBounded(mock, "m", time.Second)

	res, err := b.Generate(context.Background(), testInstruction(), language.Japanese)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Type != language.DefaultCategory(language.Japanese) {
		t.Errorf("expected default category, got %q", res.Type)
	}
}

func TestBounded_Timeout(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))

	mock := NewHangingMockGenerator()
	b := NewBounded(mock, "m", 50*time.Millisecond)

	start := time.Now()
	_, err := b.Generate(context.Background(), testInstruction(), language.English)
	elapsed := time.Since(start)

	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if Kind(err) != "timeout" {
		t.Errorf("expected kind timeout, got %q", Kind(err))
	}
	if elapsed > 50*time.Millisecond+500*time.Millisecond {
		t.Fatalf("Generate returned after %s, well past its deadline", elapsed)
	}
}

// ignoresCancel never looks at ctx, like a misbehaving client library.
type ignoresCancel struct {
	release chan struct{}
}

func (g ignoresCancel) Generate(context.Context, Request) (string, error) {
	<-g.release
	return `{"satire":"late"}`, nil
}

func TestBounded_TimeoutWhenProviderIgnoresCancellation(t *testing.T) {
	gen := ignoresCancel{release: make(chan struct{})}
	defer close(gen.release)

	b := NewBounded(gen, "m", 30*time.Millisecond)
	start := time.Now()
	_, err := b.Generate(context.Background(), testInstruction(), language.English)

	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("Generate waited on a provider that ignores cancellation")
	}
}

func TestBounded_ParentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := NewBounded(NewHangingMockGenerator(), "m", time.Second)
	_, err := b.Generate(ctx, testInstruction(), language.English)
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream for caller cancellation, got %v", err)
	}
}

func TestBounded_UpstreamError(t *testing.T) {
	mock := NewMockGeneratorWithError(errors.New("status 503: service unavailable"))
	b := NewBounded(mock, "m", time.Second)

	_, err := b.Generate(context.Background(), testInstruction(), language.English)
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("error should carry upstream detail: %v", err)
	}
	if Kind(err) != "upstream_error" {
		t.Errorf("expected kind upstream_error, got %q", Kind(err))
	}
}

func TestBounded_UnusableContent(t *testing.T) {
	tests := map[string]string{
		"non-JSON":      "Sorry, I cannot help with that.",
		"empty satire":  `{"satire":"   ","type":"Social satire"}`,
		"wrong shape":   `{"satire": {"text": "x"}}`,
		"json array":    `["satire"]`,
		"empty payload": "",
		"json null":     "null",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			var gen TextGenerator = NewMockGenerator(body)
			if body == "" {
				// an empty Response makes the mock derive an answer
				gen = emptyGenerator{}
			}

			b := NewBounded(gen, "m", time.Second)
			_, err := b.Generate(context.Background(), testInstruction(), language.English)
			if !errors.Is(err, ErrUnusableContent) {
				t.Fatalf("expected ErrUnusableContent, got %v", err)
			}
		})
	}
}

type panicGenerator struct{}

func (panicGenerator) Generate(context.Context, Request) (string, error) { panic("boom") }

func TestBounded_ProviderPanicIsUpstreamError(t *testing.T) {
	b := NewBounded(panicGenerator{}, "m", time.Second)

	_, err := b.Generate(context.Background(), testInstruction(), language.English)
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("panic detail missing: %v", err)
	}
}

type emptyGenerator struct{}

func (emptyGenerator) Generate(context.Context, Request) (string, error) { return "", nil }

func TestNewBounded_DefaultTimeout(t *testing.T) {
	b := NewBounded(emptyGenerator{}, "m", 0)
	if b.Timeout() != DefaultTimeout {
		t.Fatalf("expected %s, got %s", DefaultTimeout, b.Timeout())
	}
}

func TestParsePayload(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    payload
	}{
		{"plain", `{"satire":"a","type":"b"}`, payload{Satire: "a", Type: "b"}},
		{"fenced", "```json\n{\"satire\":\"a\",\"type\":\"b\"}\n```", payload{Satire: "a", Type: "b"}},
		{"prose around", `Here you go: {"satire":"a"} hope it helps`, payload{Satire: "a"}},
		{"garbage", "no json here", payload{}},
		{"broken", `{"satire":"a"`, payload{}},
		{"numeric satire", `{"satire":42,"type":true}`, payload{Satire: "42", Type: "true"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parsePayload(tt.content); got != tt.want {
				t.Errorf("parsePayload(%q) = %+v, want %+v", tt.content, got, tt.want)
			}
		})
	}
}

func TestMockGenerator_DefaultResponseEchoesWord(t *testing.T) {
	mock := &MockGenerator{}
	b := NewBounded(mock, "m", time.Second)

	res, err := b.Generate(context.Background(), testInstruction(), language.English)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(res.Satire, "AI ") {
		t.Errorf("mock satire should start with the word, got %q", res.Satire)
	}
}
