package generation

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"
)

// MockGenerator is a deterministic TextGenerator for tests and dry runs.
// It returns predictable responses based on the instruction content.
type MockGenerator struct {
	// Response is the fixed text returned by Generate.
	// If empty, a default JSON answer is derived from the instruction.
	Response string

	// Error, if set, is returned by Generate instead of a response.
	Error error

	// Delay postpones the answer; cancellation of ctx cuts it short.
	Delay time.Duration

	// Hang makes Generate block until ctx is done, like an upstream that
	// never answers.
	Hang bool

	mu    sync.Mutex
	last  Request
	calls int
}

// NewMockGenerator creates a mock with the given fixed response.
func NewMockGenerator(response string) *MockGenerator {
	return &MockGenerator{Response: response}
}

// NewMockGeneratorWithError creates a mock that always fails.
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Error: err}
}

// NewHangingMockGenerator creates a mock that never answers.
func NewHangingMockGenerator() *MockGenerator {
	return &MockGenerator{Hang: true}
}

// Generate returns the configured response or derives a deterministic one.
func (m *MockGenerator) Generate(ctx context.Context, req Request) (string, error) {
	m.mu.Lock()
	m.last = req
	m.calls++
	m.mu.Unlock()

	if m.Hang {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if m.Delay > 0 {
		timer := time.NewTimer(m.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if m.Error != nil {
		return "", m.Error
	}
	if m.Response != "" {
		return m.Response, nil
	}
	return mockResponse(req), nil
}

// LastRequest returns the most recent request passed to Generate.
func (m *MockGenerator) LastRequest() Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// Calls returns how many times Generate was invoked.
func (m *MockGenerator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockResponse echoes the word found on the instruction's "Word:" line.
func mockResponse(req Request) string {
	word := "it"
	for _, msg := range req.Messages {
		if msg.Role != RoleUser {
			continue
		}
		if idx := strings.LastIndex(msg.Content, "Word:"); idx >= 0 {
			if w := strings.TrimSpace(msg.Content[idx+len("Word:"):]); w != "" {
				word = w
			}
		}
	}

	out, _ := json.Marshal(payload{
		Satire: word + " is rehearsed applause for a show nobody attends.",
		Type:   "Mock satire",
	})
	return string(out)
}
