package complete

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fruit = []string{"Apple", "Banana", "Cherry"}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		raw      string
		expected string
	}{
		{"Apple", "apple"},
		{"  ApP  ", "app"},
		{"", ""},
		{"\tBANANA\n", "banana"},
		{"red apple", "red apple"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Normalize(tc.raw), "raw %q", tc.raw)
	}
}

func TestControllerStartsWithFullList(t *testing.T) {
	c := NewController(fruit, nil, OrderLatest)
	assert.Equal(t, fruit, c.Filtered())
	assert.Equal(t, "", c.Query())
	assert.Equal(t, StateIdle, c.State())
}

func TestControllerChange(t *testing.T) {
	t.Run("NormalizesAndIssuesRequest", func(t *testing.T) {
		c := NewController(fruit, nil, OrderLatest)
		req := c.Change("  AP ")
		assert.Equal(t, "ap", c.Query())
		assert.Equal(t, Request{Seq: 1, Query: "ap"}, req)
		assert.Equal(t, StateFiltering, c.State())
	})

	t.Run("LeavesFilteredUntilResultArrives", func(t *testing.T) {
		c := NewController(fruit, nil, OrderLatest)
		c.Change("ap")
		assert.Equal(t, fruit, c.Filtered())
	})

	t.Run("SequenceIncreases", func(t *testing.T) {
		c := NewController(fruit, nil, OrderLatest)
		first := c.Change("a")
		second := c.Change("ap")
		assert.Less(t, first.Seq, second.Seq)
		assert.Equal(t, second.Seq, c.Seq())
	})
}

func TestControllerApply(t *testing.T) {
	t.Run("AppliesCurrentResult", func(t *testing.T) {
		c := NewController(fruit, nil, OrderLatest)
		req := c.Change("ap")
		applied := c.Apply(Result{Request: req, Matches: Match(req.Query, fruit)})
		assert.True(t, applied)
		assert.Equal(t, []string{"Apple"}, c.Filtered())
		assert.Equal(t, StateIdle, c.State())
	})

	t.Run("LatestDiscardsStaleResult", func(t *testing.T) {
		c := NewController(fruit, nil, OrderLatest)
		a := c.Change("a")
		ap := c.Change("ap")

		require.True(t, c.Apply(Result{Request: ap, Matches: Match(ap.Query, fruit)}))
		assert.Equal(t, StateFiltering, c.State())
		assert.False(t, c.Apply(Result{Request: a, Matches: Match(a.Query, fruit)}))

		assert.Equal(t, []string{"Apple"}, c.Filtered())
		assert.Equal(t, StateIdle, c.State())
	})

	t.Run("ArrivalLetsStaleResultWin", func(t *testing.T) {
		c := NewController(fruit, nil, OrderArrival)
		a := c.Change("a")
		ap := c.Change("ap")

		assert.True(t, c.Apply(Result{Request: ap, Matches: Match(ap.Query, fruit)}))
		assert.True(t, c.Apply(Result{Request: a, Matches: Match(a.Query, fruit)}))

		// the displayed list no longer reflects the current query
		assert.Equal(t, "ap", c.Query())
		assert.Equal(t, []string{"Apple", "Banana"}, c.Filtered())
	})
}

func TestControllerSelect(t *testing.T) {
	t.Run("AdoptsCandidateVerbatimAndResets", func(t *testing.T) {
		c := NewController(fruit, nil, OrderLatest)
		req := c.Change("ap")
		c.Apply(Result{Request: req, Matches: Match(req.Query, fruit)})

		c.Select("Apple")
		assert.Equal(t, "Apple", c.Query())
		assert.Equal(t, fruit, c.Filtered())
	})

	t.Run("LatestDropsInFlightResults", func(t *testing.T) {
		c := NewController(fruit, nil, OrderLatest)
		req := c.Change("ch")
		c.Select("Banana")
		assert.False(t, c.Apply(Result{Request: req, Matches: Match(req.Query, fruit)}))
		assert.Equal(t, fruit, c.Filtered())
	})

	t.Run("ArrivalLetsInFlightResultsOverwrite", func(t *testing.T) {
		c := NewController(fruit, nil, OrderArrival)
		req := c.Change("ch")
		c.Select("Banana")
		assert.True(t, c.Apply(Result{Request: req, Matches: Match(req.Query, fruit)}))
		assert.Equal(t, []string{"Cherry"}, c.Filtered())
		assert.Equal(t, "Banana", c.Query())
	})
}

func TestControllerSubmit(t *testing.T) {
	t.Run("InvokesCallbackOnceWithQuery", func(t *testing.T) {
		var got []string
		c := NewController(fruit, func(v string) { got = append(got, v) }, OrderLatest)
		req := c.Change("ap")
		c.Apply(Result{Request: req, Matches: Match(req.Query, fruit)})
		c.Select("Apple")

		c.Submit()
		assert.Equal(t, []string{"Apple"}, got)
	})

	t.Run("DoesNotMutateState", func(t *testing.T) {
		c := NewController(fruit, func(string) {}, OrderLatest)
		req := c.Change("an")
		c.Apply(Result{Request: req, Matches: Match(req.Query, fruit)})
		before := append([]string(nil), c.Filtered()...)
		seq := c.Seq()

		c.Submit()
		assert.Equal(t, "an", c.Query())
		assert.Equal(t, before, c.Filtered())
		assert.Equal(t, seq, c.Seq())
	})

	t.Run("NilCallback", func(t *testing.T) {
		c := NewController(fruit, nil, OrderLatest)
		assert.NotPanics(t, c.Submit)
	})
}

func TestControllerSetCandidates(t *testing.T) {
	c := NewController(nil, nil, OrderLatest)
	assert.Empty(t, c.Filtered())

	c.SetCandidates(fruit)
	assert.Equal(t, fruit, c.Filtered())

	req := c.Change("ba")
	c.Apply(Result{Request: req, Matches: Match(req.Query, fruit)})
	c.SetCandidates([]string{"Banana", "Kiwi"})
	assert.Equal(t, []string{"Banana"}, c.Filtered())
	assert.Equal(t, []string{"Banana", "Kiwi"}, c.Candidates())
}

func TestParseOrdering(t *testing.T) {
	o, ok := ParseOrdering("Arrival")
	assert.True(t, ok)
	assert.Equal(t, OrderArrival, o)

	o, ok = ParseOrdering("")
	assert.True(t, ok)
	assert.Equal(t, OrderLatest, o)

	_, ok = ParseOrdering("fifo")
	assert.False(t, ok)

	assert.Equal(t, "arrival", OrderArrival.String())
	assert.Equal(t, "latest", OrderLatest.String())
}
