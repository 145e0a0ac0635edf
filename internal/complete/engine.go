package complete

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sahilm/fuzzy"
)

// DefaultDelay is the simulated lookup latency
const DefaultDelay = 500 * time.Millisecond

// Source supplies the candidate list a lookup filters
type Source interface {
	Candidates(ctx context.Context) ([]string, error)
}

// Engine filters candidates from a Source after a fixed delay
type Engine struct {
	source Source
	delay  time.Duration
	logger *log.Logger
}

// NewEngine creates an Engine. A nil logger falls back to the default charm logger.
func NewEngine(source Source, delay time.Duration, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	if delay < 0 {
		delay = 0
	}
	return &Engine{
		source: source,
		delay:  delay,
		logger: logger,
	}
}

// Delay returns the simulated latency
func (e *Engine) Delay() time.Duration {
	return e.delay
}

// Filter waits the configured delay and returns the candidates containing
// query. Source failures are logged and produce an empty result.
func (e *Engine) Filter(ctx context.Context, query string) []string {
	if e.delay > 0 {
		timer := time.NewTimer(e.delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return []string{}
		}
	}

	candidates := e.Candidates(ctx)
	matches := Match(query, candidates)
	e.logger.Debug("filtered candidates", "query", query, "matches", len(matches), "of", len(candidates))
	return matches
}

// Run executes a Request and wraps the matches in a Result
func (e *Engine) Run(ctx context.Context, req Request) Result {
	return Result{Request: req, Matches: e.Filter(ctx, req.Query)}
}

// Candidates loads the full list from the Source without the delay
func (e *Engine) Candidates(ctx context.Context) []string {
	if e.source == nil {
		return []string{}
	}
	candidates, err := e.source.Candidates(ctx)
	if err != nil {
		e.logger.Error("candidate lookup failed", "err", err)
		return []string{}
	}
	return candidates
}

// Match returns, in original order, the candidates whose lower-cased text
// contains query. The empty query matches everything.
func Match(query string, candidates []string) []string {
	matches := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c), query) {
			matches = append(matches, c)
		}
	}
	return matches
}

// Suggest returns the candidate that best matches query as a fuzzy
// subsequence, for queries with no substring match.
func Suggest(query string, candidates []string) (string, bool) {
	if query == "" || len(candidates) == 0 {
		return "", false
	}
	found := fuzzy.Find(query, lowered(candidates))
	if len(found) == 0 {
		return "", false
	}
	return candidates[found[0].Index], true
}

func lowered(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strings.ToLower(s)
	}
	return out
}
