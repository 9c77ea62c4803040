// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render formats portal documents for the terminal. Presentation
// only; all behavior lives in the app controller.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/techvista/hrdocs/internal/query"
	"github.com/techvista/hrdocs/pkg/types"
)

const dateFmt = "Jan 2, 2006"

// Table writes the document rows as a human-readable table.
func Table(w io.Writer, docs []types.Document) {
	if len(docs) == 0 {
		EmptyState(w, "No documents match", "Try adjusting filters or search terms.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-2s  %-44s  %-10s  %-8s  %-12s  %-7s  %s\n",
		"#", "", "Title", "Type", "Status", "Updated", "Size", "Departments")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, d := range docs {
		title := d.Title
		if len(title) > 44 {
			title = title[:41] + "..."
		}
		status := "Latest"
		if !d.Latest {
			status = "Outdated"
		}
		updated := ""
		if !d.LastUpdated.IsZero() {
			updated = d.LastUpdated.Format(dateFmt)
		}
		fmt.Fprintf(w, "%-4d  %-2s  %-44s  %-10s  %-8s  %-12s  %4d KB  %s\n",
			i+1, d.Format.Icon(), title, d.DocType, status, updated,
			d.SizeKB, strings.Join(d.Departments, ", "))
	}

	fmt.Fprintf(w, "\n%d results\n", len(docs))
}

// JSON writes the documents as indented JSON.
func JSON(w io.Writer, docs []types.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(docs)
}

// PreviewPane writes the preview overlay for a single document. The content
// pane itself is a placeholder; the portal does not render document bodies.
func PreviewPane(w io.Writer, d types.Document) {
	fmt.Fprintf(w, "%s %s\n", d.Format.Icon(), d.Title)
	fmt.Fprintf(w, "  %s", d.DocType)
	if d.Latest {
		fmt.Fprint(w, " · Latest")
	} else {
		fmt.Fprint(w, " · Outdated")
	}
	fmt.Fprintln(w)
	if len(d.Departments) > 0 {
		fmt.Fprintf(w, "  %s\n", strings.Join(d.Departments, ", "))
	}
	if !d.LastUpdated.IsZero() {
		fmt.Fprintf(w, "  Last updated %s · %s · %d KB\n", d.LastUpdated.Format(dateFmt), d.Format, d.SizeKB)
	}
	fmt.Fprintln(w, "\n  [ Preview placeholder ]")
	fmt.Fprintln(w, "\n  download  - fetch the latest version")
	fmt.Fprintln(w, "  copy      - copy a stable link")
	fmt.Fprintln(w, "  esc       - close")
}

// Pills writes the active filter chips above a result list.
func Pills(w io.Writer, pills []query.Pill) {
	if len(pills) == 0 {
		return
	}
	parts := make([]string, len(pills))
	for i, p := range pills {
		parts[i] = fmt.Sprintf("[%s: %s]", p.Kind, p.Value)
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
}

// Chips writes the suggested-term chips for the home view.
func Chips(w io.Writer, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "%s: %s\n", label, strings.Join(items, " · "))
}

// EmptyState writes a titled empty-state block.
func EmptyState(w io.Writer, title, body string) {
	fmt.Fprintf(w, "%s\n  %s\n", title, body)
}

// Help writes the browse-session help overlay.
func Help(w io.Writer) {
	fmt.Fprintln(w, "Learn to find documents faster")
	fmt.Fprintln(w, "  1. Use /<text> to search titles, types, and departments.")
	fmt.Fprintln(w, "  2. Refine with type, dept, from, and to filters.")
	fmt.Fprintln(w, "  3. Preview documents, then download the latest version.")
	fmt.Fprintln(w, "  4. Favorite frequently used items and copy stable links to share.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  /<text>            set the search text and open results")
	fmt.Fprintln(w, "  type <value>       toggle the document type filter")
	fmt.Fprintln(w, "  dept <value>       toggle a department filter")
	fmt.Fprintln(w, "  from|to <date>     set a date bound (YYYY-MM-DD, empty clears)")
	fmt.Fprintln(w, "  sort <key>         relevance or last_updated")
	fmt.Fprintln(w, "  clear              clear all filters")
	fmt.Fprintln(w, "  results|home|bookmarks   switch view")
	fmt.Fprintln(w, "  preview|fav|copy|open N  act on row N")
	fmt.Fprintln(w, "  ?                  this help; esc closes overlays; quit exits")
}
