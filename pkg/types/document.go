// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the hrdocs portal client.
package types

import "time"

// Format identifies the file format of a document.
type Format string

// Known document formats. The portal may return formats outside this set;
// rendering falls back to a generic glyph for those.
const (
	FormatPDF  Format = "PDF"
	FormatXLSX Format = "XLSX"
	FormatDOCX Format = "DOCX"
)

// Known reports whether the format is one of the enumerated values.
func (f Format) Known() bool {
	switch f {
	case FormatPDF, FormatXLSX, FormatDOCX:
		return true
	}
	return false
}

// Icon returns the display glyph for the format. Unknown formats get the
// generic file glyph.
func (f Format) Icon() string {
	switch f {
	case FormatPDF:
		return "▤"
	case FormatXLSX:
		return "▦"
	case FormatDOCX:
		return "▥"
	default:
		return "□"
	}
}

// Document is a read-only snapshot of a portal document. The portal API
// owns the underlying record; the client never mutates one.
type Document struct {
	// ID is the version-specific document identifier.
	ID string `json:"id" yaml:"id"`

	// CanonicalID is the stable identifier for the document's version
	// lineage, used to resolve "latest" regardless of which version was
	// originally linked. Empty when the document has no lineage.
	CanonicalID string `json:"canonical_id,omitempty" yaml:"canonical_id,omitempty"`

	// Title is the display title.
	Title string `json:"title" yaml:"title"`

	// DocType is the document category (e.g. "Policies", "Forms").
	DocType string `json:"doc_type" yaml:"doc_type"`

	// Departments lists the departments the document belongs to.
	Departments []string `json:"departments" yaml:"departments"`

	// Format is the file format tag.
	Format Format `json:"format" yaml:"format"`

	// SizeKB is the file size in kilobytes.
	SizeKB int `json:"size_kb" yaml:"size_kb"`

	// LastUpdated is the timestamp of the most recent revision.
	LastUpdated time.Time `json:"last_updated" yaml:"last_updated"`

	// Latest reports whether this is the current version within its
	// canonical lineage.
	Latest bool `json:"latest" yaml:"latest"`

	// DownloadURL points at the downloadable file.
	DownloadURL string `json:"download_url" yaml:"download_url"`
}

// ShareID returns the identifier used in shareable links: the canonical ID
// when the document has one, otherwise the version ID.
func (d Document) ShareID() string {
	if d.CanonicalID != "" {
		return d.CanonicalID
	}
	return d.ID
}

// Suggested holds the portal's suggested search terms for the home view.
type Suggested struct {
	Types       []string `json:"suggested_types" yaml:"suggested_types"`
	Departments []string `json:"suggested_departments" yaml:"suggested_departments"`
}

// DocTypes is the fixed list of document types offered by the filter panel,
// in presentation order.
var DocTypes = []string{"Policies", "Forms", "Templates", "Guides", "Checklists"}

// Departments is the fixed list of departments offered by the filter panel.
// Department display order is always derived from this list, never from
// selection order.
var Departments = []string{
	"Engineering",
	"Sales",
	"Marketing",
	"Operations",
	"Finance",
	"Customer Support",
	"Design",
}
