// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/techvista/hrdocs/internal/app"
	"github.com/techvista/hrdocs/internal/query"
	"github.com/techvista/hrdocs/internal/render"
	"github.com/techvista/hrdocs/pkg/types"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Run the interactive portal session",
	Long: `Browse runs the full portal session in the terminal: the login gate,
the home view with suggestions and recent documents, the filterable
results view, the bookmarks view, and the preview overlay. Line commands
stand in for the portal's clicks; type ? for the list.

Arriving via a shared link is simulated with --doc, which resolves the
identifier to the latest version of its lineage and opens the preview.`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().String("doc", "", "start with a shared document identifier resolved and previewed")
	browseCmd.Flags().String("metrics-addr", "", "serve Prometheus metrics on this address (overrides config)")

	rootCmd.AddCommand(browseCmd)
}

// termClipboard is the terminal stand-in for the system clipboard: it prints
// the copied text so the user can select it.
type termClipboard struct{ w io.Writer }

func (c termClipboard) Write(text string) error {
	_, err := fmt.Fprintf(c.w, "  %s\n", text)
	return err
}

// termOpener prints the URL instead of launching a browser. Downloads stay
// the portal's job.
type termOpener struct{ w io.Writer }

func (o termOpener) Open(rawURL string) error {
	_, err := fmt.Fprintf(o.w, "  Opening %s\n", rawURL)
	return err
}

// termNotifier prints transient notices. Expiry is meaningless on a
// scrolling terminal, so the duration is dropped.
type termNotifier struct{ w io.Writer }

func (n termNotifier) Notify(text string, _ time.Duration) {
	fmt.Fprintf(n.w, "* %s\n", text)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	log := newLogger(cmd)

	reg := prometheus.NewRegistry()
	client, err := newPortalClient(cfg.Portal, log, reg)
	if err != nil {
		return err
	}

	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")
	if metricsAddr == "" {
		metricsAddr = cfg.Browse.MetricsAddr
	}
	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(metricsAddr, mux); err != nil {
				log.Warn("metrics server stopped", zap.Error(err))
			}
		}()
	}

	out := cmd.OutOrStdout()
	pageURL, err := browsePageURL(cmd, cfg.Portal.LinkBase, cfg.Portal.BaseURL)
	if err != nil {
		return err
	}

	ctrl, err := app.New(client, app.Config{
		Clipboard: termClipboard{w: out},
		Opener:    termOpener{w: out},
		Notifier:  termNotifier{w: out},
		Logger:    log,
		PageURL:   pageURL,
	})
	if err != nil {
		return err
	}

	in := bufio.NewScanner(cmd.InOrStdin())

	// Login gate. Credentials are accepted unconditionally; the identity
	// only personalizes favorites and bookmarks. Blank email stays signed
	// out.
	fmt.Fprintln(out, "TechVista HR Document Portal")
	fmt.Fprint(out, "Email: ")
	email := readLine(in)
	if email == "" {
		email = identity(cmd)
	}
	if email != "" {
		fmt.Fprint(out, "Password: ")
		readLine(in)
		ctrl.SignIn(email)
		fmt.Fprintf(out, "Signed in as %s\n\n", email)
	} else {
		fmt.Fprintln(out, "Continuing signed out; favorites are disabled.")
		fmt.Fprintln(out)
	}

	ctx := cmd.Context()
	ctrl.Start(ctx)

	s := session{app: ctrl, out: out, pageSize: cfg.Browse.PageSize}
	s.draw()

	for {
		fmt.Fprint(out, "> ")
		if !in.Scan() {
			fmt.Fprintln(out)
			return in.Err()
		}
		line := strings.TrimSpace(in.Text())
		if line == "quit" || line == "exit" {
			return nil
		}
		s.dispatch(ctx, line)
	}
}

// browsePageURL builds the shareable page URL the session's copy-link and
// startup resolution operate on.
func browsePageURL(cmd *cobra.Command, base, fallback string) (string, error) {
	page := base
	if page == "" {
		page = fallback
	}
	if page == "" {
		page = "http://localhost/"
	}

	docID, _ := cmd.Flags().GetString("doc")
	if docID == "" {
		return page, nil
	}
	u, err := url.Parse(page)
	if err != nil {
		return "", fmt.Errorf("parsing link base: %w", err)
	}
	q := u.Query()
	q.Set("doc", docID)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func readLine(in *bufio.Scanner) string {
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

// session drives one interactive browse loop. It owns nothing but the
// drawing; all state lives in the controller.
type session struct {
	app      *app.App
	out      io.Writer
	pageSize int
}

// dispatch runs one line command and redraws.
func (s *session) dispatch(ctx context.Context, line string) {
	switch {
	case line == "":
		// Empty line dismisses the overlay, like clicking the backdrop.
		s.app.ClosePreview()
	case line == "?":
		render.Help(s.out)
		return
	case line == "esc":
		s.app.ClosePreview()
	case strings.HasPrefix(line, "/"):
		s.app.SetSearch(ctx, strings.TrimSpace(line[1:]))
		if s.app.View() != app.ViewResults {
			s.app.OpenResults(ctx)
		}
	case line == "home":
		s.app.OpenHome()
	case line == "results":
		s.app.OpenResults(ctx)
	case line == "bookmarks":
		s.app.OpenBookmarks(ctx)
	case line == "clear":
		s.app.ClearFilters(ctx)
	case line == "download", line == "copy":
		// Bare forms act on the open preview.
		if d := s.app.Preview(); d != nil {
			if line == "download" {
				s.app.Download(*d)
			} else {
				s.app.CopyLink(*d)
			}
		} else {
			fmt.Fprintln(s.out, "No preview open.")
		}
		return
	default:
		s.dispatchArg(ctx, line)
	}
	s.draw()
}

func (s *session) dispatchArg(ctx context.Context, line string) {
	verb, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch verb {
	case "type":
		s.app.ToggleType(ctx, arg)
	case "dept":
		s.app.ToggleDepartment(ctx, arg)
	case "from":
		s.app.SetDateBound(ctx, query.BoundFrom, arg)
	case "to":
		s.app.SetDateBound(ctx, query.BoundTo, arg)
	case "sort":
		if k := query.Sort(arg); k.Valid() {
			s.app.SetSort(ctx, k)
		} else {
			fmt.Fprintf(s.out, "Unknown sort key %q (relevance or last_updated).\n", arg)
		}
	case "pick":
		s.app.PickSuggested(ctx, arg)
	case "preview", "fav", "copy", "open":
		doc, ok := s.row(arg)
		if !ok {
			fmt.Fprintf(s.out, "No row %q on this view.\n", arg)
			return
		}
		switch verb {
		case "preview":
			s.app.OpenPreview(doc)
		case "fav":
			s.app.Favorite(ctx, doc)
		case "copy":
			s.app.CopyLink(doc)
		case "open":
			s.app.Download(doc)
		}
	default:
		fmt.Fprintf(s.out, "Unknown command %q; type ? for help.\n", line)
	}
}

// row resolves a 1-based row number against the active view's list.
func (s *session) row(arg string) (types.Document, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return types.Document{}, false
	}
	docs := s.visible()
	if n > len(docs) {
		return types.Document{}, false
	}
	return docs[n-1], true
}

// visible returns the list the row commands index on the active view. On
// the bookmarks view favorites come first, then the shared team bookmarks.
func (s *session) visible() []types.Document {
	switch s.app.View() {
	case app.ViewResults:
		return s.app.Results()
	case app.ViewBookmarks:
		docs := append([]types.Document{}, s.app.Favorites()...)
		return append(docs, s.app.TeamBookmarks()...)
	default:
		return s.app.Recents()
	}
}

// draw renders the active view, with the preview overlay on top when open.
func (s *session) draw() {
	fmt.Fprintln(s.out)
	if d := s.app.Preview(); d != nil {
		render.PreviewPane(s.out, *d)
		return
	}

	switch s.app.View() {
	case app.ViewResults:
		q := s.app.Query()
		if q.Text != "" {
			fmt.Fprintf(s.out, "Results for %q\n", q.Text)
		}
		render.Pills(s.out, q.Pills())
		render.Table(s.out, s.truncate(s.app.Results()))
	case app.ViewBookmarks:
		fmt.Fprintln(s.out, "My favorites")
		if s.app.SignedIn() {
			render.Table(s.out, s.app.Favorites())
		} else {
			render.EmptyState(s.out, "Sign in to see favorites", "Favorites are saved per account.")
		}
		fmt.Fprintln(s.out, "\nTeam bookmarks")
		render.Table(s.out, s.app.TeamBookmarks())
	default:
		sg := s.app.Suggested()
		render.Chips(s.out, "Suggested types", sg.Types)
		render.Chips(s.out, "Suggested departments", sg.Departments)
		fmt.Fprintln(s.out, "\nRecently updated")
		render.Table(s.out, s.app.Recents())
	}
}

// truncate caps long result lists at the configured page size.
func (s *session) truncate(docs []types.Document) []types.Document {
	if s.pageSize > 0 && len(docs) > s.pageSize {
		return docs[:s.pageSize]
	}
	return docs
}
