package query

import (
	"sync"
	"time"
)

// View modes of the listing pages
const (
	ViewGrid = "grid"
	ViewList = "list"
)

// State is the full tuple of filter, search, sort and view dimensions held by
// a view-state controller. It is comparable, which is what the memoization
// below keys on.
type State struct {
	Search     string
	Type       string
	Status     string
	Fee        string
	Platform   string
	Skill      string
	Category   string
	Membership string
	Sort       string
	View       string
}

// DefaultState returns the "show everything" state every dimension resets to
func DefaultState() State {
	return State{
		Type:       FilterAll,
		Status:     FilterAll,
		Fee:        FilterAll,
		Platform:   FilterAll,
		Membership: FilterAll,
		Sort:       SortLatest,
		View:       ViewGrid,
	}
}

// ActiveFilter is one dimension currently holding a non-default value. The
// active-filter list is derived from the state, never stored.
type ActiveFilter struct {
	Dimension string `json:"dimension"`
	Value     string `json:"value"`
}

// Controller owns the mutable view state of one page view and recomputes the
// query output whenever an input dimension changed. It lives for the duration
// of a page view and is discarded on navigation; nothing is persisted.
//
// The compute function runs one full query pass over a now snapshot taken
// once per recomputation. Results are memoized on the state tuple, so
// unrelated re-renders (timer ticks and the like) never trigger a pass.
type Controller[T any] struct {
	mu      sync.Mutex
	state   State
	compute func(State, time.Time) T

	cached    T
	cachedFor State
	computed  bool
}

// NewController creates a controller initialized to the all-defaults state
func NewController[T any](compute func(State, time.Time) T) *Controller[T] {
	return &Controller[T]{
		state:   DefaultState(),
		compute: compute,
	}
}

// State returns a copy of the current state tuple
func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Each setter changes exactly one dimension and leaves the others untouched.

func (c *Controller[T]) SetSearch(term string) { c.set(func(s *State) { s.Search = term }) }
func (c *Controller[T]) SetType(v string)      { c.set(func(s *State) { s.Type = v }) }
func (c *Controller[T]) SetStatus(v string)    { c.set(func(s *State) { s.Status = v }) }
func (c *Controller[T]) SetFee(v string)       { c.set(func(s *State) { s.Fee = v }) }
func (c *Controller[T]) SetPlatform(v string)  { c.set(func(s *State) { s.Platform = v }) }
func (c *Controller[T]) SetSkill(v string)     { c.set(func(s *State) { s.Skill = v }) }
func (c *Controller[T]) SetCategory(v string)  { c.set(func(s *State) { s.Category = v }) }
func (c *Controller[T]) SetMembership(v string) {
	c.set(func(s *State) { s.Membership = v })
}
func (c *Controller[T]) SetSort(v string) { c.set(func(s *State) { s.Sort = v }) }
func (c *Controller[T]) SetView(v string) { c.set(func(s *State) { s.View = v }) }

func (c *Controller[T]) set(mutate func(*State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	mutate(&c.state)
}

// Reset restores every dimension to its default simultaneously. It is the
// only transition touching more than one dimension.
func (c *Controller[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = DefaultState()
}

// ActiveFilters returns the dimensions currently holding a non-default value,
// used for UI feedback only.
func (c *Controller[T]) ActiveFilters() []ActiveFilter {
	c.mu.Lock()
	defer c.mu.Unlock()

	defaults := DefaultState()
	var active []ActiveFilter
	add := func(dimension, value, fallback string) {
		if value != "" && value != fallback {
			active = append(active, ActiveFilter{Dimension: dimension, Value: value})
		}
	}
	add("search", c.state.Search, defaults.Search)
	add("type", c.state.Type, defaults.Type)
	add("status", c.state.Status, defaults.Status)
	add("fee", c.state.Fee, defaults.Fee)
	add("platform", c.state.Platform, defaults.Platform)
	add("skill", c.state.Skill, defaults.Skill)
	add("category", c.state.Category, defaults.Category)
	add("membership", c.state.Membership, defaults.Membership)
	add("sort", c.state.Sort, defaults.Sort)
	return active
}

// Results returns the query output for the current state, recomputing only
// when the state tuple changed since the last call. The now snapshot is taken
// here, once per recomputation, and reused across the whole pass.
func (c *Controller[T]) Results(now time.Time) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.computed && c.state == c.cachedFor {
		return c.cached
	}
	c.cached = c.compute(c.state, now)
	c.cachedFor = c.state
	c.computed = true
	return c.cached
}
