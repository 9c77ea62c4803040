// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/techvista/hrdocs/internal/render"
)

var recentsCmd = &cobra.Command{
	Use:   "recents",
	Short: "List recently updated documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		client, err := newPortalClient(cfg.Portal, newLogger(cmd), nil)
		if err != nil {
			return err
		}

		docs, err := client.Recents(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return render.JSON(out, docs)
		}
		render.Table(out, docs)
		return nil
	},
}

func init() {
	recentsCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(recentsCmd)
}
