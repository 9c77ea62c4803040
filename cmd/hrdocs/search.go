// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/techvista/hrdocs/internal/query"
	"github.com/techvista/hrdocs/internal/render"
)

var searchCmd = &cobra.Command{
	Use:   "search [text...]",
	Short: "Search portal documents",
	Long: `Search queries the portal document index. Free text, a document type, any
number of departments, and an inclusive date range can be combined; each
dimension is sent only when constrained. Results can be saved to a YAML
query file and re-rendered later without hitting the portal.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("type", "", "document type filter (single-select)")
	searchCmd.Flags().StringSlice("dept", nil, "department filter (repeatable)")
	searchCmd.Flags().String("from", "", "updated-date range start (YYYY-MM-DD)")
	searchCmd.Flags().String("to", "", "updated-date range end (YYYY-MM-DD)")
	searchCmd.Flags().String("sort", string(query.SortRelevance), "sort key: relevance or last_updated")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("save", "", "save the query and results to a YAML file")
	searchCmd.Flags().String("load", "", "render a previously saved query file instead of querying")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	asJSON, _ := cmd.Flags().GetBool("json")

	if path, _ := cmd.Flags().GetString("load"); path != "" {
		qf, err := query.ReadQueryFile(path)
		if err != nil {
			return err
		}
		if asJSON {
			return render.JSON(out, qf.Results)
		}
		render.Pills(out, qf.Query.ToState().Pills())
		render.Table(out, qf.Results)
		return nil
	}

	st := query.New()
	if len(args) > 0 {
		st.SetText(strings.Join(args, " "))
	}
	if v, _ := cmd.Flags().GetString("type"); v != "" {
		st.ToggleType(v)
	}
	depts, _ := cmd.Flags().GetStringSlice("dept")
	for _, d := range depts {
		st.ToggleDepartment(d)
	}
	if v, _ := cmd.Flags().GetString("from"); v != "" {
		st.SetDateBound(query.BoundFrom, v)
	}
	if v, _ := cmd.Flags().GetString("to"); v != "" {
		st.SetDateBound(query.BoundTo, v)
	}
	sortKey, _ := cmd.Flags().GetString("sort")
	if s := query.Sort(sortKey); s.Valid() {
		st.SetSort(s)
	} else {
		return fmt.Errorf("unknown sort key %q (use relevance or last_updated)", sortKey)
	}

	cfg := loadConfig()
	client, err := newPortalClient(cfg.Portal, newLogger(cmd), nil)
	if err != nil {
		return err
	}

	docs, err := client.Documents(cmd.Context(), st.Params())
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := query.WriteQueryFile(path, st, docs); err != nil {
			return err
		}
		fmt.Fprintf(out, "Saved %d results to %s\n", len(docs), path)
	}

	if asJSON {
		return render.JSON(out, docs)
	}
	render.Pills(out, st.Pills())
	render.Table(out, docs)
	return nil
}
