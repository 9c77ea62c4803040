// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/techvista/hrdocs/pkg/types"
)

// QueryFile is the on-disk representation of a search and its results. A
// search can be saved to a file and re-rendered later without re-querying
// the portal.
type QueryFile struct {
	Query   Params           `yaml:"query"`
	Results []types.Document `yaml:"results"`
	Summary Summary          `yaml:"summary"`
}

// Params stores the query state in a serializable form.
type Params struct {
	Text        string   `yaml:"text,omitempty"`
	DocType     string   `yaml:"doc_type,omitempty"`
	Departments []string `yaml:"departments,omitempty"`
	DateFrom    string   `yaml:"date_from,omitempty"`
	DateTo      string   `yaml:"date_to,omitempty"`
	Sort        string   `yaml:"sort"`
}

// Summary stores result statistics and a timestamp.
type Summary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves the query state and its results to a YAML file.
func WriteQueryFile(path string, s *State, results []types.Document) error {
	qf := QueryFile{
		Query: Params{
			Text:        s.Text,
			DocType:     s.DocType,
			Departments: s.Departments(),
			DateFrom:    s.DateFrom,
			DateTo:      s.DateTo,
			Sort:        string(s.Sort),
		},
		Results: results,
		Summary: Summary{
			Total:     len(results),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

// ToState converts stored Params back into query state.
func (p Params) ToState() *State {
	s := New()
	s.Text = p.Text
	s.DocType = p.DocType
	for _, d := range p.Departments {
		s.departments[d] = struct{}{}
	}
	s.DateFrom = p.DateFrom
	s.DateTo = p.DateTo
	s.SetSort(Sort(p.Sort))
	return s
}
