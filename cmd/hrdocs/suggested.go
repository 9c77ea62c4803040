// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/techvista/hrdocs/internal/render"
)

var suggestedCmd = &cobra.Command{
	Use:   "suggested",
	Short: "Show suggested document types and departments",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		client, err := newPortalClient(cfg.Portal, newLogger(cmd), nil)
		if err != nil {
			return err
		}

		s, err := client.Suggested(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(s)
		}
		render.Chips(out, "Suggested types", s.Types)
		render.Chips(out, "Suggested departments", s.Departments)
		return nil
	},
}

func init() {
	suggestedCmd.Flags().Bool("json", false, "output suggestions as JSON")
	rootCmd.AddCommand(suggestedCmd)
}
