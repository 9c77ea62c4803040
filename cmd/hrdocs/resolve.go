// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/techvista/hrdocs/internal/render"
	"github.com/techvista/hrdocs/pkg/types"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <document-id>",
	Short: "Resolve a shared identifier to the latest document version",
	Long: `Resolve looks up the latest version in the lineage behind a shared
identifier, exactly as the portal does when a copied link is opened. The
identifier may be a canonical ID or a plain version ID. With --link the
command also prints the stable shareable URL for the result.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().Bool("link", false, "print the stable shareable URL as well")
	resolveCmd.Flags().Bool("json", false, "output the document as JSON")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	client, err := newPortalClient(cfg.Portal, newLogger(cmd), nil)
	if err != nil {
		return err
	}

	doc, err := client.Latest(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("resolving %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return render.JSON(out, []types.Document{doc})
	}
	render.PreviewPane(out, doc)

	if withLink, _ := cmd.Flags().GetBool("link"); withLink {
		link, err := shareURL(linkBase(cfg.Portal), doc.ShareID())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nShare link: %s\n", link)
	}
	return nil
}

// shareURL builds the stable shareable URL carrying the document identifier.
func shareURL(base, shareID string) (string, error) {
	if base == "" {
		base = "http://localhost/"
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parsing link base: %w", err)
	}
	q := u.Query()
	q.Set("doc", shareID)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
