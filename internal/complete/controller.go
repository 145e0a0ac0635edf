// Package complete holds the autocomplete state machine, the filter engine
// and the highlight splitter. Nothing in here knows about the terminal.
package complete

import "strings"

// Ordering decides whether a finished filter request may overwrite the
// current Filtered Result.
type Ordering int

const (
	// OrderLatest applies a result only if no newer request was issued.
	OrderLatest Ordering = iota
	// OrderArrival applies every result as it completes. Results can land
	// out of keystroke order.
	OrderArrival
)

// String returns the config name of the ordering
func (o Ordering) String() string {
	switch o {
	case OrderArrival:
		return "arrival"
	default:
		return "latest"
	}
}

// ParseOrdering maps a config name to an Ordering
func ParseOrdering(name string) (Ordering, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "latest":
		return OrderLatest, true
	case "arrival":
		return OrderArrival, true
	}
	return OrderLatest, false
}

// State is the controller's lookup state
type State int

const (
	StateIdle State = iota
	StateFiltering
)

func (s State) String() string {
	if s == StateFiltering {
		return "filtering"
	}
	return "idle"
}

// Request identifies one filter lookup
type Request struct {
	Seq   uint64
	Query string
}

// Result is the outcome of a Request
type Result struct {
	Request
	Matches []string
}

// Controller owns Query and Filtered Result and relays user intent.
// It is not safe for concurrent use; drive it from a single event loop.
type Controller struct {
	candidates []string
	query      string
	filtered   []string
	onSubmit   func(value string)
	ordering   Ordering

	seq     uint64
	pending int
}

// NewController creates a controller over candidates. onSubmit may be nil.
func NewController(candidates []string, onSubmit func(value string), ordering Ordering) *Controller {
	list := append([]string(nil), candidates...)
	return &Controller{
		candidates: list,
		filtered:   list,
		onSubmit:   onSubmit,
		ordering:   ordering,
	}
}

// Normalize lower-cases and trims raw input text
func Normalize(raw string) string {
	return strings.TrimSpace(strings.ToLower(raw))
}

// Change stores the normalized text as Query and issues a filter request.
// Earlier requests stay outstanding.
func (c *Controller) Change(raw string) Request {
	c.query = Normalize(raw)
	c.seq++
	c.pending++
	return Request{Seq: c.seq, Query: c.query}
}

// Apply records a finished request and reports whether its matches replaced
// Filtered Result.
func (c *Controller) Apply(res Result) bool {
	if c.pending > 0 {
		c.pending--
	}
	if c.ordering == OrderLatest && res.Seq != c.seq {
		return false
	}
	c.filtered = res.Matches
	return true
}

// Select adopts a candidate verbatim and resets Filtered Result to the full
// list without re-filtering.
func (c *Controller) Select(candidate string) {
	c.query = candidate
	c.filtered = c.candidates
	if c.ordering == OrderLatest {
		// in-flight results belong to a query the user moved past
		c.seq++
	}
}

// Submit hands the current value to the callback
func (c *Controller) Submit() {
	if c.onSubmit != nil {
		c.onSubmit(c.query)
	}
}

// SetCandidates replaces the baseline list. Filtered Result follows it only
// while Query is empty.
func (c *Controller) SetCandidates(candidates []string) {
	c.candidates = append([]string(nil), candidates...)
	if c.query == "" {
		c.filtered = c.candidates
	}
}

func (c *Controller) Query() string        { return c.query }
func (c *Controller) Filtered() []string   { return c.filtered }
func (c *Controller) Candidates() []string { return c.candidates }
func (c *Controller) Ordering() Ordering   { return c.ordering }

// Seq returns the newest sequence number issued
func (c *Controller) Seq() uint64 { return c.seq }

// State reports Filtering while any request is outstanding
func (c *Controller) State() State {
	if c.pending > 0 {
		return StateFiltering
	}
	return StateIdle
}
