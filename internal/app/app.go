// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package app is the portal application controller. It owns the whole state
// tree (session, view, query, result lists, preview, notices) and is its
// only mutator; presentation units get read-only snapshots plus callbacks.
//
// All mutations happen on the single event loop of the surface driving the
// controller, so no locking is done here. Portal calls are the only
// suspension points.
package app

import (
	"context"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/techvista/hrdocs/internal/query"
	"github.com/techvista/hrdocs/pkg/types"
)

// View enumerates the portal screens. Exactly one is active at a time.
type View string

const (
	ViewHome      View = "home"
	ViewResults   View = "results"
	ViewBookmarks View = "bookmarks"
)

// Notice durations match the portal's toast timings.
const (
	CopyNoticeDuration     = 1600 * time.Millisecond
	FavoriteNoticeDuration = 1500 * time.Millisecond
)

// API is the portal collaborator the controller fetches from.
type API interface {
	Suggested(ctx context.Context) (types.Suggested, error)
	Recents(ctx context.Context) ([]types.Document, error)
	Documents(ctx context.Context, params url.Values) ([]types.Document, error)
	Latest(ctx context.Context, canonicalID string) (types.Document, error)
	Favorites(ctx context.Context, userID string) ([]types.Document, error)
	AddFavorite(ctx context.Context, userID, documentID string) error
	SharedBookmarks(ctx context.Context) ([]types.Document, error)
}

// Clipboard is the external clipboard capability.
type Clipboard interface {
	Write(text string) error
}

// Opener opens a URL in an external trusted context (browser, file handler).
type Opener interface {
	Open(rawURL string) error
}

// Notifier shows a transient notice to the user. The surface owns expiry.
type Notifier interface {
	Notify(text string, d time.Duration)
}

// Config wires the controller's collaborators.
type Config struct {
	Clipboard Clipboard
	Opener    Opener
	Notifier  Notifier
	Logger    *zap.Logger

	// PageURL is the shareable page location copy-link operates on
	// (e.g. the portal front-end URL). Resolve reads the "doc"
	// parameter from it at startup.
	PageURL string
}

// App is the application controller.
type App struct {
	api    API
	clip   Clipboard
	opener Opener
	notify Notifier
	log    *zap.Logger

	session string
	view    View
	query   *query.State

	suggested     types.Suggested
	recents       []types.Document
	results       []types.Document
	favorites     []types.Document
	teamBookmarks []types.Document
	preview       *types.Document

	pageURL   *url.URL
	resultGen uint64
}

// New creates a controller in the home view with an empty query and no
// session.
func New(api API, cfg Config) (*App, error) {
	a := &App{
		api:    api,
		clip:   cfg.Clipboard,
		opener: cfg.Opener,
		notify: cfg.Notifier,
		log:    cfg.Logger,
		view:   ViewHome,
		query:  query.New(),
	}
	if a.log == nil {
		a.log = zap.NewNop()
	}
	if cfg.PageURL != "" {
		u, err := url.Parse(cfg.PageURL)
		if err != nil {
			return nil, err
		}
		a.pageURL = u
	}
	return a, nil
}

// Start loads the home-view data and resolves a canonical link carried in
// the page URL, if any. Fetch failures degrade to empty collections; link
// resolution failure is silent.
func (a *App) Start(ctx context.Context) {
	if s, err := a.api.Suggested(ctx); err == nil {
		a.suggested = s
	} else {
		a.log.Warn("suggested fetch failed", zap.Error(err))
	}
	if docs, err := a.api.Recents(ctx); err == nil {
		a.recents = docs
	} else {
		a.log.Warn("recents fetch failed", zap.Error(err))
	}
	a.resolveStartupLink(ctx)
}

// --- session gate ---

// SignIn records the identity. Credentials are accepted unconditionally;
// this is a stub, not an authentication scheme. The identity only gates
// favorite writes and bookmarks personalization.
func (a *App) SignIn(email string) {
	a.session = email
}

// SignedIn reports whether an identity is held.
func (a *App) SignedIn() bool { return a.session != "" }

// Session returns the held identity, or "" when signed out.
func (a *App) Session() string { return a.session }

// --- view router ---

// View returns the active view.
func (a *App) View() View { return a.view }

// OpenHome switches to the home view. Nothing is refetched; the home data
// is loaded once at Start.
func (a *App) OpenHome() {
	a.view = ViewHome
}

// OpenResults switches to the results view and refreshes the result list.
// Re-entering with an unchanged query replaces the list rather than
// appending to it.
func (a *App) OpenResults(ctx context.Context) {
	a.view = ViewResults
	a.refreshResults(ctx)
}

// PickSuggested adopts a suggested term as the query text and opens the
// results view.
func (a *App) PickSuggested(ctx context.Context, term string) {
	a.query.SetText(term)
	a.OpenResults(ctx)
}

// OpenBookmarks switches to the bookmarks view. The personal favorites
// fetch happens only with a session; the shared team bookmarks fetch is
// unconditional. Failures degrade to empty lists.
func (a *App) OpenBookmarks(ctx context.Context) {
	a.view = ViewBookmarks

	a.favorites = nil
	if a.session != "" {
		docs, err := a.api.Favorites(ctx, a.session)
		if err != nil {
			a.log.Warn("favorites fetch failed", zap.Error(err))
			docs = nil
		}
		a.favorites = docs
	}

	docs, err := a.api.SharedBookmarks(ctx)
	if err != nil {
		a.log.Warn("bookmarks fetch failed", zap.Error(err))
		docs = nil
	}
	a.teamBookmarks = docs
}

// --- query mutations; each re-derives results while on the results view ---

// SetSearch replaces the free-text query.
func (a *App) SetSearch(ctx context.Context, text string) {
	a.query.SetText(text)
	a.refreshIfResults(ctx)
}

// ToggleType toggles the single-select document type filter.
func (a *App) ToggleType(ctx context.Context, v string) {
	a.query.ToggleType(v)
	a.refreshIfResults(ctx)
}

// ToggleDepartment toggles a department in the filter set.
func (a *App) ToggleDepartment(ctx context.Context, v string) {
	a.query.ToggleDepartment(v)
	a.refreshIfResults(ctx)
}

// SetDateBound sets or clears one end of the date range.
func (a *App) SetDateBound(ctx context.Context, which query.Bound, v string) {
	a.query.SetDateBound(which, v)
	a.refreshIfResults(ctx)
}

// SetSort replaces the sort key.
func (a *App) SetSort(ctx context.Context, s query.Sort) {
	a.query.SetSort(s)
	a.refreshIfResults(ctx)
}

// ClearFilters resets the filter set, leaving text and sort untouched.
func (a *App) ClearFilters(ctx context.Context) {
	a.query.ClearAll()
	a.refreshIfResults(ctx)
}

func (a *App) refreshIfResults(ctx context.Context) {
	if a.view == ViewResults {
		a.refreshResults(ctx)
	}
}

// --- result fetcher ---

// refreshResults issues one portal search for the current query state. Each
// refresh carries a generation number; a response is applied only while its
// generation is still the latest issued, so a slow earlier response can
// never overwrite a newer list.
func (a *App) refreshResults(ctx context.Context) {
	gen := a.issueRefresh()
	docs, err := a.api.Documents(ctx, a.query.Params())
	a.applyResults(gen, docs, err)
}

func (a *App) issueRefresh() uint64 {
	a.resultGen++
	return a.resultGen
}

func (a *App) applyResults(gen uint64, docs []types.Document, err error) {
	if gen != a.resultGen {
		a.log.Debug("discarding stale result arrival",
			zap.Uint64("generation", gen),
			zap.Uint64("latest", a.resultGen),
		)
		return
	}
	if err != nil {
		// Transport and parse failures degrade to an empty list; the
		// user sees the same empty state as zero matches.
		a.log.Warn("documents fetch failed", zap.Error(err))
		a.results = []types.Document{}
		return
	}
	if docs == nil {
		docs = []types.Document{}
	}
	a.results = docs
}

// --- favorites ---

// Favorite records a favorite for the signed-in user. Without a session it
// shows a rejection notice and never reaches the network. Write failures
// get a distinct notice.
func (a *App) Favorite(ctx context.Context, doc types.Document) {
	if a.session == "" {
		a.showNotice("Please sign in to save favorites", FavoriteNoticeDuration)
		return
	}
	if err := a.api.AddFavorite(ctx, a.session, doc.ID); err != nil {
		a.log.Warn("favorite write failed", zap.String("document", doc.ID), zap.Error(err))
		a.showNotice("Could not save favorite", FavoriteNoticeDuration)
		return
	}
	a.showNotice("Added to favorites", FavoriteNoticeDuration)
}

// --- preview ---

// OpenPreview shows the preview overlay for doc.
func (a *App) OpenPreview(doc types.Document) {
	d := doc
	a.preview = &d
}

// ClosePreview dismisses the preview overlay.
func (a *App) ClosePreview() {
	a.preview = nil
}

// Download hands the document's download URL to the external opener.
func (a *App) Download(doc types.Document) {
	if a.opener == nil {
		return
	}
	if err := a.opener.Open(doc.DownloadURL); err != nil {
		a.log.Warn("open download failed", zap.String("document", doc.ID), zap.Error(err))
	}
}

func (a *App) showNotice(text string, d time.Duration) {
	if a.notify != nil {
		a.notify.Notify(text, d)
	}
}

// --- snapshots for presentation ---

// Query returns the live query state. Presentation reads it; mutations go
// through the controller so the result list stays derived.
func (a *App) Query() *query.State { return a.query }

// Suggested returns the home-view suggestions.
func (a *App) Suggested() types.Suggested { return a.suggested }

// Recents returns the home-view recent documents.
func (a *App) Recents() []types.Document { return a.recents }

// Results returns the current result list.
func (a *App) Results() []types.Document { return a.results }

// Favorites returns the signed-in user's favorites (bookmarks view).
func (a *App) Favorites() []types.Document { return a.favorites }

// TeamBookmarks returns the shared team bookmarks (bookmarks view).
func (a *App) TeamBookmarks() []types.Document { return a.teamBookmarks }

// Preview returns the previewed document, or nil when the overlay is
// closed.
func (a *App) Preview() *types.Document { return a.preview }
