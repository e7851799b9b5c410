package game

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseHints(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		count   int
		want    HintSet
		wantErr bool
	}{
		{
			name:  "three hints",
			text:  "Hint 1: first\nHint 2: second\nHint 3: third",
			count: 3,
			want:  HintSet{"first", "second", "third"},
		},
		{
			name:  "blank lines and padding",
			text:  "\n  Hint 1: first  \n\nHint 2: second\nHint 3: third\n",
			count: 3,
			want:  HintSet{"first", "second", "third"},
		},
		{
			name:  "single hint",
			text:  "Hint 1: only one",
			count: 1,
			want:  HintSet{"only one"},
		},
		{
			name:    "preamble",
			text:    "Sure! Here you go:\nHint 1: a\nHint 2: b\nHint 3: c",
			count:   3,
			wantErr: true,
		},
		{
			name:    "out of order",
			text:    "Hint 1: a\nHint 3: c\nHint 2: b",
			count:   3,
			wantErr: true,
		},
		{
			name:    "too few",
			text:    "Hint 1: a\nHint 2: b",
			count:   3,
			wantErr: true,
		},
		{
			name:    "too many",
			text:    "Hint 1: a\nHint 2: b",
			count:   1,
			wantErr: true,
		},
		{
			name:    "empty",
			text:    "",
			count:   3,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHints(tt.text, tt.count)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedResponse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatHintsRoundTrip(t *testing.T) {
	hints := HintSet{"a place", "with desks", "and bells"}
	got, err := ParseHints(FormatHints(hints), 3)
	require.NoError(t, err)
	assert.Equal(t, hints, got)
}

func TestLocalHints(t *testing.T) {
	hints := LocalHints("Planet")
	require.Len(t, hints, 3)
	assert.Equal(t, "This word has 6 letters.", hints[0])
	assert.Equal(t, "It starts with 'p' and has 2 vowel(s).", hints[1])
	assert.Equal(t, "It ends with 't'.", hints[2])
	for _, h := range hints {
		assert.NotContains(t, strings.ToLower(h), "planet")
	}
}

func TestHintServiceGetHints(t *testing.T) {
	ctx := context.Background()

	t.Run("parsed source output", func(t *testing.T) {
		source := new(MockHintSource)
		source.On("FetchHints", mock.Anything, "school", 3).Return("Hint 1: a\nHint 2: b\nHint 3: c", nil)
		svc := NewHintService(source, 3, time.Second, quietLogger())

		assert.Equal(t, HintSet{"a", "b", "c"}, svc.GetHints(ctx, "school"))
		source.AssertExpectations(t)
	})

	fallbackCases := []struct {
		name string
		text string
		err  error
	}{
		{"unavailable", "", ErrProviderUnavailable},
		{"malformed", "the answer is school", nil},
		{"wrong count", "Hint 1: a", nil},
		{"cancelled", "", context.Canceled},
	}
	for _, tc := range fallbackCases {
		t.Run("falls back when "+tc.name, func(t *testing.T) {
			source := new(MockHintSource)
			source.On("FetchHints", mock.Anything, "school", 3).Return(tc.text, tc.err)
			svc := NewHintService(source, 3, time.Second, quietLogger())

			assert.Equal(t, LocalHints("school"), svc.GetHints(ctx, "school"))
		})
	}

	t.Run("single style truncates fallback", func(t *testing.T) {
		svc := NewHintService(nil, 1, time.Second, quietLogger())
		assert.Equal(t, LocalHints("robot")[:1], svc.GetHints(ctx, "robot"))
	})

	t.Run("source panic is contained", func(t *testing.T) {
		source := new(MockHintSource)
		source.On("FetchHints", mock.Anything, "robot", 3).Panic("boom")
		svc := NewHintService(source, 3, time.Second, quietLogger())

		assert.Equal(t, LocalHints("robot"), svc.GetHints(ctx, "robot"))
	})

	t.Run("timeout bounds the fetch", func(t *testing.T) {
		source := new(MockHintSource)
		source.On("FetchHints", mock.Anything, "robot", 3).Return("", context.DeadlineExceeded).Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		})
		svc := NewHintService(source, 3, 20*time.Millisecond, quietLogger())

		start := time.Now()
		assert.Equal(t, LocalHints("robot"), svc.GetHints(ctx, "robot"))
		assert.Less(t, time.Since(start), 5*time.Second)
	})
}

func TestStaticSource(t *testing.T) {
	src := NewStaticSource(nil)

	text, err := src.FetchHints(context.Background(), "School", 3)
	require.NoError(t, err)
	hints, err := ParseHints(text, 3)
	require.NoError(t, err)
	assert.Equal(t, HintSet(ClueBank["school"]), hints)

	_, err = src.FetchHints(context.Background(), "zebra", 3)
	assert.ErrorIs(t, err, ErrProviderUnavailable)

	for _, w := range DefaultWords {
		assert.Len(t, ClueBank[w], 3, w)
	}
}

func TestOpenAISource(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key never dials", func(t *testing.T) {
		src := NewOpenAISource(`  ""  `, "", "http://127.0.0.1:1")
		_, err := src.FetchHints(ctx, "robot", 3)
		assert.ErrorIs(t, err, ErrProviderUnavailable)
	})

	t.Run("chat completion", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var req chatRequest
			if assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) && assert.Len(t, req.Messages, 1) {
				assert.Equal(t, DefaultOpenAIModel, req.Model)
				assert.Contains(t, req.Messages[0].Content, "'robot'")
			}

			json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]string{"role": "assistant", "content": "Hint 1: a\nHint 2: b\nHint 3: c\n"}},
				},
			})
		}))
		defer server.Close()

		src := NewOpenAISource("'test-key'", "", server.URL+"/")
		text, err := src.FetchHints(ctx, "robot", 3)
		require.NoError(t, err)
		assert.Equal(t, "Hint 1: a\nHint 2: b\nHint 3: c", text)
	})

	t.Run("error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, err := NewOpenAISource("k", "", server.URL).FetchHints(ctx, "robot", 3)
		assert.ErrorIs(t, err, ErrProviderUnavailable)
	})

	t.Run("no choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		_, err := NewOpenAISource("k", "", server.URL).FetchHints(ctx, "robot", 3)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("feeds the hint service", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Hint 1: only"}}]}`))
		}))
		defer server.Close()

		svc := NewHintService(NewOpenAISource("k", "", server.URL), 1, time.Second, quietLogger())
		assert.Equal(t, HintSet{"only"}, svc.GetHints(ctx, "robot"))
	})
}

func TestHintPrompt(t *testing.T) {
	assert.Contains(t, hintPrompt("robot", 1), "ONE short hint")
	assert.Contains(t, hintPrompt("robot", 3), "THREE progressive hints")
}
