package game

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
)

// MockHintProvider is a mock implementation of HintProvider
type MockHintProvider struct {
	mock.Mock
}

func (m *MockHintProvider) GetHints(ctx context.Context, word string) HintSet {
	args := m.Called(ctx, word)
	return args.Get(0).(HintSet)
}

func (m *MockHintProvider) Fallback(word string) HintSet {
	args := m.Called(word)
	return args.Get(0).(HintSet)
}

// MockHintSource is a mock implementation of HintSource
type MockHintSource struct {
	mock.Mock
}

func (m *MockHintSource) FetchHints(ctx context.Context, word string, count int) (string, error) {
	args := m.Called(ctx, word, count)
	return args.String(0), args.Error(1)
}

// gatedProvider holds every GetHints call until release is closed or the
// caller's context ends
type gatedProvider struct {
	hints   HintSet
	release chan struct{}

	mu    sync.Mutex
	calls []string
}

func newGatedProvider(hints HintSet) *gatedProvider {
	return &gatedProvider{hints: hints, release: make(chan struct{})}
}

func (p *gatedProvider) GetHints(ctx context.Context, word string) HintSet {
	p.mu.Lock()
	p.calls = append(p.calls, word)
	p.mu.Unlock()

	select {
	case <-p.release:
		return p.hints
	case <-ctx.Done():
		return p.Fallback(word)
	}
}

func (p *gatedProvider) Fallback(word string) HintSet {
	return HintSet{"local 1", "local 2", "local 3"}
}

func (p *gatedProvider) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}
