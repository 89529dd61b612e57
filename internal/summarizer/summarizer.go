// Package summarizer fans one chat-completion request out per slide,
// retries rate-limited requests with exponential backoff, and collects the
// replies in slide order. A failed slide becomes an error-string result;
// it never aborts the run or its sibling requests.
package summarizer

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"deck-summarizer/internal/cache"
	"deck-summarizer/internal/deck"
	"deck-summarizer/internal/llm"
	"deck-summarizer/internal/retry"
)

// DefaultSeed is the fixed instruction prepended to every per-slide request.
var DefaultSeed = []llm.Message{
	{Role: llm.RoleSystem, Content: "Please summarize the slides and provide additional information."},
}

const errPrefix = "Error processing slide: "

// Options tunes the per-slide request policy.
type Options struct {
	// Model is only used for cache keys; the llm.Client fixes the model
	// actually called.
	Model string

	// MaxAttempts caps calls per slide, counting the first one. Zero or
	// negative means a single attempt.
	MaxAttempts int

	// RetryBase is the first backoff delay; it doubles per retry.
	RetryBase time.Duration

	// MaxConcurrent bounds in-flight requests; 0 means one per slide.
	MaxConcurrent int

	// CacheTTL is how long looked-up summaries stay valid.
	CacheTTL time.Duration
}

// Summarizer turns slides into per-slide summary strings.
type Summarizer struct {
	llm   llm.Client
	cache cache.Cache
	log   *slog.Logger
	opts  Options
}

// New builds a Summarizer. A nil cache disables caching.
func New(client llm.Client, c cache.Cache, log *slog.Logger, opts Options) *Summarizer {
	if c == nil {
		c = cache.NewNoOpCache()
	}
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}
	if opts.RetryBase <= 0 {
		opts.RetryBase = 500 * time.Millisecond
	}
	return &Summarizer{llm: client, cache: c, log: log, opts: opts}
}

// SummarizeAll issues one request per slide, all concurrent, and returns
// exactly one result string per slide in input order. Results are written
// into pre-allocated slots, so completion order never reorders them, and a
// slide's failure never cancels its siblings.
func (s *Summarizer) SummarizeAll(ctx context.Context, slides []deck.Slide, seed []llm.Message) []string {
	results := make([]string, len(slides))
	g := &errgroup.Group{}
	if s.opts.MaxConcurrent > 0 {
		g.SetLimit(s.opts.MaxConcurrent)
	}
	for i, slide := range slides {
		g.Go(func() error {
			results[i] = s.summarizeOne(ctx, i, slide, seed)
			return nil
		})
	}
	// Workers absorb their own errors, so Wait always returns nil.
	_ = g.Wait()
	return results
}

// summarizeOne resolves a single slide to its result string. The seed is
// cloned before the slide's user message is appended; concurrent slides
// must never share a mutable conversation.
func (s *Summarizer) summarizeOne(ctx context.Context, index int, slide deck.Slide, seed []llm.Message) string {
	text := slide.Text()
	key := cache.Key(s.opts.Model, text)

	if hit, err := s.cache.GetSummary(ctx, key); err != nil {
		s.log.Warn("cache lookup failed", "slide", index+1, "err", err)
	} else if hit != "" {
		s.log.Debug("cache hit", "slide", index+1)
		return hit
	}

	messages := append(slices.Clone(seed), llm.Message{Role: llm.RoleUser, Content: text})
	reply, err := s.complete(ctx, index, messages)
	if err != nil {
		s.log.Warn("slide failed", "slide", index+1, "err", err)
		return errPrefix + err.Error()
	}
	reply = strings.TrimSpace(reply)

	if err := s.cache.SetSummary(ctx, key, reply, s.opts.CacheTTL); err != nil {
		s.log.Warn("cache store failed", "slide", index+1, "err", err)
	}
	return reply
}

// complete calls the LLM, retrying only rate-limit errors with exponential
// backoff until MaxAttempts is exhausted. Backoff blocks just this slide.
func (s *Summarizer) complete(ctx context.Context, index int, messages []llm.Message) (string, error) {
	var lastErr error
	for attempt := 0; attempt < s.opts.MaxAttempts; attempt++ {
		reply, err := s.llm.Complete(ctx, messages)
		if err == nil {
			return reply, nil
		}
		if !errors.Is(err, llm.ErrRateLimited) {
			return "", err
		}
		lastErr = err
		if attempt == s.opts.MaxAttempts-1 {
			break
		}
		s.log.Debug("rate limited, backing off", "slide", index+1, "attempt", attempt+1)
		if err := retry.Sleep(ctx, attempt, s.opts.RetryBase); err != nil {
			return "", err
		}
	}
	return "", lastErr
}
