// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query holds the search query state: free text, the structured
// filter set, and the sort key, plus the rules for turning that state into
// portal request parameters.
package query

import (
	"net/url"
	"sort"
	"strings"

	"github.com/techvista/hrdocs/pkg/types"
)

// Sort selects the result ordering.
type Sort string

const (
	SortRelevance   Sort = "relevance"
	SortLastUpdated Sort = "last_updated"
)

// Valid reports whether s is a known sort key.
func (s Sort) Valid() bool {
	return s == SortRelevance || s == SortLastUpdated
}

// Bound selects which end of the date range SetDateBound updates.
type Bound string

const (
	BoundFrom Bound = "from"
	BoundTo   Bound = "to"
)

// State is the full search query state. Absence of a filter key means
// "unconstrained on that dimension". Date bounds are kept as the raw
// YYYY-MM-DD strings the user typed and passed through verbatim; the range
// is deliberately not order-checked (the portal owns interpretation).
type State struct {
	Text        string
	DocType     string
	departments map[string]struct{}
	DateFrom    string
	DateTo      string
	Sort        Sort
}

// New returns an empty query with the default sort.
func New() *State {
	return &State{
		departments: make(map[string]struct{}),
		Sort:        SortRelevance,
	}
}

// SetText replaces the free-text query unconditionally.
func (s *State) SetText(text string) {
	s.Text = text
}

// ToggleType sets the single-select document type, or clears it when v is
// already selected. Applying the same value twice is a no-op overall.
func (s *State) ToggleType(v string) {
	if s.DocType == v {
		s.DocType = ""
		return
	}
	s.DocType = v
}

// ToggleDepartment adds v to the department set if absent, removes it if
// present.
func (s *State) ToggleDepartment(v string) {
	if _, ok := s.departments[v]; ok {
		delete(s.departments, v)
		return
	}
	s.departments[v] = struct{}{}
}

// HasDepartment reports whether v is selected.
func (s *State) HasDepartment(v string) bool {
	_, ok := s.departments[v]
	return ok
}

// Departments returns the selected departments in presentation order: the
// fixed department list first, then any values outside it alphabetically.
// Selection order never leaks into display or requests.
func (s *State) Departments() []string {
	var out []string
	seen := make(map[string]bool, len(s.departments))
	for _, d := range types.Departments {
		if _, ok := s.departments[d]; ok {
			out = append(out, d)
			seen[d] = true
		}
	}
	var extra []string
	for d := range s.departments {
		if !seen[d] {
			extra = append(extra, d)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

// SetDateBound sets date_from or date_to, or clears the bound when v is
// empty.
func (s *State) SetDateBound(which Bound, v string) {
	switch which {
	case BoundFrom:
		s.DateFrom = v
	case BoundTo:
		s.DateTo = v
	}
}

// SetSort replaces the sort key. Unknown keys are ignored.
func (s *State) SetSort(v Sort) {
	if v.Valid() {
		s.Sort = v
	}
}

// ClearAll resets the filter set to fully unconstrained. Free text and sort
// are untouched.
func (s *State) ClearAll() {
	s.DocType = ""
	s.departments = make(map[string]struct{})
	s.DateFrom = ""
	s.DateTo = ""
}

// HasFilters reports whether any filter dimension is constrained.
func (s *State) HasFilters() bool {
	return s.DocType != "" || len(s.departments) > 0 || s.DateFrom != "" || s.DateTo != ""
}

// Params builds the portal request parameters: q only when the text is
// non-empty, doc_type only when set, departments comma-joined only when the
// set is non-empty, each date bound only when set, and sort always.
func (s *State) Params() url.Values {
	params := url.Values{}
	if s.Text != "" {
		params.Set("q", s.Text)
	}
	if s.DocType != "" {
		params.Set("doc_type", s.DocType)
	}
	if deps := s.Departments(); len(deps) > 0 {
		params.Set("departments", strings.Join(deps, ","))
	}
	if s.DateFrom != "" {
		params.Set("date_from", s.DateFrom)
	}
	if s.DateTo != "" {
		params.Set("date_to", s.DateTo)
	}
	params.Set("sort", string(s.Sort))
	return params
}

// Encode returns the URL-encoded request parameters.
func (s *State) Encode() string {
	return s.Params().Encode()
}

// Pill is one active-filter chip as shown above the result list.
type Pill struct {
	Kind  string // "Type", "Dept", or "Date"
	Value string
}

// Pills derives the active filter chips from the filter set. A single Date
// pill covers both bounds, with "Any" standing in for an open end.
func (s *State) Pills() []Pill {
	var pills []Pill
	if s.DocType != "" {
		pills = append(pills, Pill{Kind: "Type", Value: s.DocType})
	}
	for _, d := range s.Departments() {
		pills = append(pills, Pill{Kind: "Dept", Value: d})
	}
	if s.DateFrom != "" || s.DateTo != "" {
		from, to := s.DateFrom, s.DateTo
		if from == "" {
			from = "Any"
		}
		if to == "" {
			to = "Any"
		}
		pills = append(pills, Pill{Kind: "Date", Value: from + " -> " + to})
	}
	return pills
}

// Clone returns an independent copy of the state.
func (s *State) Clone() *State {
	c := &State{
		Text:        s.Text,
		DocType:     s.DocType,
		DateFrom:    s.DateFrom,
		DateTo:      s.DateTo,
		Sort:        s.Sort,
		departments: make(map[string]struct{}, len(s.departments)),
	}
	for d := range s.departments {
		c.departments[d] = struct{}{}
	}
	return c
}
