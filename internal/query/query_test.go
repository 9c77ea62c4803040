package query

import (
	"net/url"
	"reflect"
	"testing"
)

// --- toggles ---

func TestToggleTypeInvolution(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		value   string
	}{
		{"from empty", "", "Policies"},
		{"from same value", "Policies", "Policies"},
		{"from other value", "Forms", "Policies"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.DocType = tt.initial

			s.ToggleType(tt.value)
			s.ToggleType(tt.value)

			if s.DocType != tt.initial {
				t.Errorf("DocType after double toggle = %q, want %q", s.DocType, tt.initial)
			}
		})
	}
}

func TestToggleTypeSingleSelect(t *testing.T) {
	s := New()
	s.ToggleType("Policies")
	if s.DocType != "Policies" {
		t.Fatalf("DocType = %q, want Policies", s.DocType)
	}
	// Selecting another type replaces, never accumulates.
	s.ToggleType("Forms")
	if s.DocType != "Forms" {
		t.Errorf("DocType = %q, want Forms", s.DocType)
	}
	s.ToggleType("Forms")
	if s.DocType != "" {
		t.Errorf("DocType after clearing toggle = %q, want empty", s.DocType)
	}
}

func TestToggleDepartmentInvolution(t *testing.T) {
	tests := []struct {
		name      string
		preselect []string
		value     string
	}{
		{"empty set", nil, "Sales"},
		{"value already present", []string{"Sales"}, "Sales"},
		{"other values present", []string{"Engineering", "Design"}, "Sales"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			for _, d := range tt.preselect {
				s.ToggleDepartment(d)
			}
			before := s.Departments()

			s.ToggleDepartment(tt.value)
			s.ToggleDepartment(tt.value)

			if got := s.Departments(); !reflect.DeepEqual(got, before) {
				t.Errorf("Departments after double toggle = %v, want %v", got, before)
			}
		})
	}
}

func TestDepartmentsPresentationOrder(t *testing.T) {
	s := New()
	// Select in reverse of the fixed list order.
	s.ToggleDepartment("Design")
	s.ToggleDepartment("Finance")
	s.ToggleDepartment("Engineering")

	want := []string{"Engineering", "Finance", "Design"}
	if got := s.Departments(); !reflect.DeepEqual(got, want) {
		t.Errorf("Departments = %v, want fixed-list order %v", got, want)
	}
}

// --- ClearAll ---

func TestClearAll(t *testing.T) {
	s := New()
	s.SetText("leave policy")
	s.SetSort(SortLastUpdated)
	s.ToggleType("Policies")
	s.ToggleDepartment("Sales")
	s.SetDateBound(BoundFrom, "2024-01-01")
	s.SetDateBound(BoundTo, "2024-06-30")

	s.ClearAll()

	if s.HasFilters() {
		t.Errorf("HasFilters() = true after ClearAll")
	}
	if s.Text != "leave policy" {
		t.Errorf("Text = %q, ClearAll must not touch free text", s.Text)
	}
	if s.Sort != SortLastUpdated {
		t.Errorf("Sort = %q, ClearAll must not touch sort", s.Sort)
	}
}

// --- date bounds ---

func TestSetDateBound(t *testing.T) {
	s := New()
	s.SetDateBound(BoundFrom, "2024-03-01")
	s.SetDateBound(BoundTo, "2024-01-01") // from > to is accepted as-is
	if s.DateFrom != "2024-03-01" || s.DateTo != "2024-01-01" {
		t.Errorf("bounds = (%q, %q), want verbatim values", s.DateFrom, s.DateTo)
	}

	s.SetDateBound(BoundFrom, "")
	if s.DateFrom != "" {
		t.Errorf("DateFrom = %q, empty value must clear the bound", s.DateFrom)
	}
	if s.DateTo != "2024-01-01" {
		t.Errorf("DateTo = %q, clearing one bound must not touch the other", s.DateTo)
	}
}

// --- request parameters ---

func TestParamsFullQuery(t *testing.T) {
	s := New()
	s.SetText("leave policy")
	s.ToggleType("Policies")
	s.SetSort(SortLastUpdated)

	got := s.Params()
	want := url.Values{
		"q":        {"leave policy"},
		"doc_type": {"Policies"},
		"sort":     {"last_updated"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Params() = %v, want %v", got, want)
	}
	for _, absent := range []string{"departments", "date_from", "date_to"} {
		if _, ok := got[absent]; ok {
			t.Errorf("Params() includes %q, want key absent", absent)
		}
	}
}

func TestParamsEmptyQuery(t *testing.T) {
	s := New()
	if got, want := s.Encode(), "sort=relevance"; got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestParamsConditionalKeys(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *State)
		key   string
		want  string
	}{
		{"departments comma-joined", func(s *State) {
			s.ToggleDepartment("Sales")
			s.ToggleDepartment("Engineering")
		}, "departments", "Engineering,Sales"},
		{"date_from", func(s *State) { s.SetDateBound(BoundFrom, "2024-01-01") }, "date_from", "2024-01-01"},
		{"date_to", func(s *State) { s.SetDateBound(BoundTo, "2024-06-30") }, "date_to", "2024-06-30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			tt.setup(s)
			if got := s.Params().Get(tt.key); got != tt.want {
				t.Errorf("Params()[%q] = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

// --- pills ---

func TestPills(t *testing.T) {
	s := New()
	if pills := s.Pills(); len(pills) != 0 {
		t.Fatalf("Pills() on unconstrained state = %v, want none", pills)
	}

	s.ToggleType("Forms")
	s.ToggleDepartment("Design")
	s.ToggleDepartment("Sales")
	s.SetDateBound(BoundFrom, "2024-01-01")

	want := []Pill{
		{Kind: "Type", Value: "Forms"},
		{Kind: "Dept", Value: "Sales"},
		{Kind: "Dept", Value: "Design"},
		{Kind: "Date", Value: "2024-01-01 -> Any"},
	}
	if got := s.Pills(); !reflect.DeepEqual(got, want) {
		t.Errorf("Pills() = %v, want %v", got, want)
	}
}

// --- clone ---

func TestCloneIsIndependent(t *testing.T) {
	s := New()
	s.SetText("onboarding")
	s.ToggleDepartment("Sales")

	c := s.Clone()
	c.ToggleDepartment("Design")
	c.SetText("offboarding")

	if s.HasDepartment("Design") {
		t.Errorf("mutating the clone changed the original department set")
	}
	if s.Text != "onboarding" {
		t.Errorf("Text = %q, want onboarding", s.Text)
	}
}
