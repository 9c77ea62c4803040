package app

import (
	"context"
	"errors"
	"net/url"
	"reflect"
	"testing"
	"time"

	"github.com/techvista/hrdocs/internal/query"
	"github.com/techvista/hrdocs/pkg/types"
)

// --- fakes ---

type favWrite struct {
	userID     string
	documentID string
}

type fakeAPI struct {
	suggested    types.Suggested
	recents      []types.Document
	documents    []types.Document
	documentsErr error
	latest       types.Document
	latestErr    error
	favorites    []types.Document
	shared       []types.Document

	documentsCalls []url.Values
	latestCalls    []string
	favoritesCalls []string
	favWrites      []favWrite
	favWriteErr    error
	sharedCalls    int
}

func (f *fakeAPI) Suggested(_ context.Context) (types.Suggested, error) {
	return f.suggested, nil
}

func (f *fakeAPI) Recents(_ context.Context) ([]types.Document, error) {
	return f.recents, nil
}

func (f *fakeAPI) Documents(_ context.Context, params url.Values) ([]types.Document, error) {
	f.documentsCalls = append(f.documentsCalls, params)
	return f.documents, f.documentsErr
}

func (f *fakeAPI) Latest(_ context.Context, canonicalID string) (types.Document, error) {
	f.latestCalls = append(f.latestCalls, canonicalID)
	return f.latest, f.latestErr
}

func (f *fakeAPI) Favorites(_ context.Context, userID string) ([]types.Document, error) {
	f.favoritesCalls = append(f.favoritesCalls, userID)
	return f.favorites, nil
}

func (f *fakeAPI) AddFavorite(_ context.Context, userID, documentID string) error {
	f.favWrites = append(f.favWrites, favWrite{userID: userID, documentID: documentID})
	return f.favWriteErr
}

func (f *fakeAPI) SharedBookmarks(_ context.Context) ([]types.Document, error) {
	f.sharedCalls++
	return f.shared, nil
}

type recordingNotifier struct {
	notices   []string
	durations []time.Duration
}

func (n *recordingNotifier) Notify(text string, d time.Duration) {
	n.notices = append(n.notices, text)
	n.durations = append(n.durations, d)
}

type recordingClipboard struct {
	writes []string
}

func (c *recordingClipboard) Write(text string) error {
	c.writes = append(c.writes, text)
	return nil
}

func doc(id, canonical string) types.Document {
	return types.Document{
		ID:          id,
		CanonicalID: canonical,
		Title:       "Doc " + id,
		DocType:     "Policies",
		Format:      types.FormatPDF,
		Latest:      true,
		DownloadURL: "https://files.example/" + id + ".pdf",
	}
}

func newTestApp(t *testing.T, api API, cfg Config) *App {
	t.Helper()
	a, err := New(api, cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return a
}

// --- canonical link resolution ---

func TestStartResolvesCanonicalLink(t *testing.T) {
	api := &fakeAPI{latest: doc("v3", "ABC123")}
	a := newTestApp(t, api, Config{PageURL: "https://docs.techvista.example/?doc=ABC123"})

	a.Start(context.Background())

	if got := api.latestCalls; !reflect.DeepEqual(got, []string{"ABC123"}) {
		t.Fatalf("latest lookups = %v, want exactly one for ABC123", got)
	}
	if a.Preview() == nil {
		t.Fatal("Preview() = nil, want the resolved document")
	}
	if a.Preview().ID != "v3" {
		t.Errorf("Preview().ID = %q, want v3", a.Preview().ID)
	}
}

func TestStartResolutionFailureIsSilent(t *testing.T) {
	api := &fakeAPI{latestErr: errors.New("boom")}
	n := &recordingNotifier{}
	a := newTestApp(t, api, Config{PageURL: "https://docs.techvista.example/?doc=XYZ", Notifier: n})

	a.Start(context.Background())

	if a.Preview() != nil {
		t.Errorf("Preview() = %v, want nil on resolution failure", a.Preview())
	}
	if len(n.notices) != 0 {
		t.Errorf("notices = %v, failure must be silent", n.notices)
	}
}

func TestStartWithoutDocParam(t *testing.T) {
	api := &fakeAPI{}
	a := newTestApp(t, api, Config{PageURL: "https://docs.techvista.example/"})

	a.Start(context.Background())

	if len(api.latestCalls) != 0 {
		t.Errorf("latest lookups = %v, want none without a doc parameter", api.latestCalls)
	}
}

// --- session gate ---

func TestFavoriteWithoutSession(t *testing.T) {
	api := &fakeAPI{}
	n := &recordingNotifier{}
	a := newTestApp(t, api, Config{Notifier: n})

	a.Favorite(context.Background(), doc("d1", ""))

	if len(api.favWrites) != 0 {
		t.Fatalf("favorite writes = %v, unauthenticated attempts must never reach the network", api.favWrites)
	}
	if len(n.notices) != 1 || n.notices[0] != "Please sign in to save favorites" {
		t.Errorf("notices = %v, want exactly one rejection notice", n.notices)
	}
	if n.durations[0] != FavoriteNoticeDuration {
		t.Errorf("notice duration = %v, want %v", n.durations[0], FavoriteNoticeDuration)
	}
}

func TestFavoriteWithSession(t *testing.T) {
	api := &fakeAPI{}
	n := &recordingNotifier{}
	a := newTestApp(t, api, Config{Notifier: n})
	a.SignIn("a@b.com")

	a.Favorite(context.Background(), doc("d1", ""))

	want := []favWrite{{userID: "a@b.com", documentID: "d1"}}
	if !reflect.DeepEqual(api.favWrites, want) {
		t.Fatalf("favorite writes = %v, want %v", api.favWrites, want)
	}
	if len(n.notices) != 1 || n.notices[0] != "Added to favorites" {
		t.Errorf("notices = %v, want one success notice", n.notices)
	}
}

func TestFavoriteWriteFailureIsSurfaced(t *testing.T) {
	api := &fakeAPI{favWriteErr: errors.New("boom")}
	n := &recordingNotifier{}
	a := newTestApp(t, api, Config{Notifier: n})
	a.SignIn("a@b.com")

	a.Favorite(context.Background(), doc("d1", ""))

	if len(n.notices) != 1 || n.notices[0] != "Could not save favorite" {
		t.Errorf("notices = %v, want one failure notice", n.notices)
	}
}

// --- view router ---

func TestOpenResultsFetches(t *testing.T) {
	api := &fakeAPI{documents: []types.Document{doc("d1", ""), doc("d2", "")}}
	a := newTestApp(t, api, Config{})

	a.OpenResults(context.Background())

	if a.View() != ViewResults {
		t.Fatalf("View() = %q, want results", a.View())
	}
	if len(a.Results()) != 2 {
		t.Errorf("len(Results()) = %d, want 2", len(a.Results()))
	}
}

func TestViewReentryIsIdempotent(t *testing.T) {
	api := &fakeAPI{
		documents: []types.Document{doc("d1", ""), doc("d2", "")},
		shared:    []types.Document{doc("b1", "")},
	}
	a := newTestApp(t, api, Config{})
	ctx := context.Background()

	a.OpenResults(ctx)
	first := a.Results()

	a.OpenBookmarks(ctx)
	a.OpenResults(ctx)

	if got := a.Results(); !reflect.DeepEqual(got, first) {
		t.Errorf("Results() after re-entry = %v, want unchanged %v", got, first)
	}
	if len(a.Results()) != 2 {
		t.Errorf("len(Results()) = %d, re-entry must not duplicate rows", len(a.Results()))
	}
}

func TestOpenBookmarksFetches(t *testing.T) {
	tests := []struct {
		name            string
		session         string
		wantFavCalls    []string
		wantSharedCalls int
	}{
		{"signed out", "", nil, 1},
		{"signed in", "a@b.com", []string{"a@b.com"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{
				favorites: []types.Document{doc("f1", "")},
				shared:    []types.Document{doc("b1", "")},
			}
			a := newTestApp(t, api, Config{})
			if tt.session != "" {
				a.SignIn(tt.session)
			}

			a.OpenBookmarks(context.Background())

			if !reflect.DeepEqual(api.favoritesCalls, tt.wantFavCalls) {
				t.Errorf("favorites calls = %v, want %v", api.favoritesCalls, tt.wantFavCalls)
			}
			if api.sharedCalls != tt.wantSharedCalls {
				t.Errorf("shared calls = %d, want %d", api.sharedCalls, tt.wantSharedCalls)
			}
			if len(a.TeamBookmarks()) != 1 {
				t.Errorf("len(TeamBookmarks()) = %d, want 1", len(a.TeamBookmarks()))
			}
		})
	}
}

// --- result fetcher ---

func TestQueryMutationRefreshesOnResultsView(t *testing.T) {
	api := &fakeAPI{}
	a := newTestApp(t, api, Config{})
	ctx := context.Background()

	a.SetSearch(ctx, "leave policy") // home view: no fetch
	if len(api.documentsCalls) != 0 {
		t.Fatalf("documents calls = %d, mutations on home must not fetch", len(api.documentsCalls))
	}

	a.OpenResults(ctx)
	a.ToggleType(ctx, "Policies")
	a.SetSort(ctx, query.SortLastUpdated)

	if len(api.documentsCalls) != 3 {
		t.Fatalf("documents calls = %d, want 3 (open + two mutations)", len(api.documentsCalls))
	}

	last := api.documentsCalls[2]
	want := url.Values{
		"q":        {"leave policy"},
		"doc_type": {"Policies"},
		"sort":     {"last_updated"},
	}
	if !reflect.DeepEqual(last, want) {
		t.Errorf("request params = %v, want %v", last, want)
	}
}

func TestFetchFailureYieldsEmptyList(t *testing.T) {
	api := &fakeAPI{
		documents:    []types.Document{doc("d1", "")},
		documentsErr: errors.New("boom"),
	}
	a := newTestApp(t, api, Config{})

	a.OpenResults(context.Background())

	if got := a.Results(); len(got) != 0 {
		t.Errorf("Results() = %v, want empty list on fetch failure", got)
	}
}

func TestStaleResultArrivalIsDiscarded(t *testing.T) {
	api := &fakeAPI{}
	a := newTestApp(t, api, Config{})

	// Two refreshes in flight; the older one arrives last.
	genOld := a.issueRefresh()
	genNew := a.issueRefresh()

	a.applyResults(genNew, []types.Document{doc("new", "")}, nil)
	a.applyResults(genOld, []types.Document{doc("old", "")}, nil)

	if len(a.Results()) != 1 || a.Results()[0].ID != "new" {
		t.Errorf("Results() = %v, stale arrival must not overwrite newer data", a.Results())
	}
}

func TestPickSuggested(t *testing.T) {
	api := &fakeAPI{}
	a := newTestApp(t, api, Config{})

	a.PickSuggested(context.Background(), "Policies")

	if a.View() != ViewResults {
		t.Errorf("View() = %q, want results", a.View())
	}
	if a.Query().Text != "Policies" {
		t.Errorf("query text = %q, want the picked term", a.Query().Text)
	}
	if len(api.documentsCalls) != 1 {
		t.Errorf("documents calls = %d, want 1", len(api.documentsCalls))
	}
}

// --- copy link ---

func TestCopyLink(t *testing.T) {
	tests := []struct {
		name string
		doc  types.Document
		want string
	}{
		{"uses canonical id", doc("v2", "canon-9"), "https://docs.techvista.example/?doc=canon-9"},
		{"falls back to version id", doc("v2", ""), "https://docs.techvista.example/?doc=v2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip := &recordingClipboard{}
			n := &recordingNotifier{}
			a := newTestApp(t, &fakeAPI{}, Config{
				PageURL:   "https://docs.techvista.example/",
				Clipboard: clip,
				Notifier:  n,
			})

			a.CopyLink(tt.doc)

			if !reflect.DeepEqual(clip.writes, []string{tt.want}) {
				t.Errorf("clipboard writes = %v, want %v", clip.writes, []string{tt.want})
			}
			if a.ShareLink() != tt.want {
				t.Errorf("ShareLink() = %q, want %q", a.ShareLink(), tt.want)
			}
			if len(n.notices) != 1 || n.notices[0] != "Link copied" {
				t.Errorf("notices = %v, want one copy confirmation", n.notices)
			}
			if n.durations[0] != CopyNoticeDuration {
				t.Errorf("notice duration = %v, want %v", n.durations[0], CopyNoticeDuration)
			}
		})
	}
}

// --- preview ---

func TestPreviewOpenClose(t *testing.T) {
	a := newTestApp(t, &fakeAPI{}, Config{})

	a.OpenPreview(doc("d1", ""))
	if a.Preview() == nil || a.Preview().ID != "d1" {
		t.Fatalf("Preview() = %v, want d1", a.Preview())
	}

	a.ClosePreview()
	if a.Preview() != nil {
		t.Errorf("Preview() = %v after close, want nil", a.Preview())
	}
}
