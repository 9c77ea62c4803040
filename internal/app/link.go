// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/techvista/hrdocs/pkg/types"
)

// docParam is the page URL query parameter carrying a shareable document
// identifier.
const docParam = "doc"

// resolveStartupLink reads the doc parameter from the page URL and, when
// present, resolves it to the latest version of its lineage and opens the
// preview. Runs once at startup. Failure is silent: the overlay simply does
// not open.
func (a *App) resolveStartupLink(ctx context.Context) {
	if a.pageURL == nil {
		return
	}
	id := a.pageURL.Query().Get(docParam)
	if id == "" {
		return
	}

	doc, err := a.api.Latest(ctx, id)
	if err != nil {
		a.log.Debug("canonical link resolution failed", zap.String("doc", id), zap.Error(err))
		return
	}
	a.preview = &doc
}

// CopyLink writes the document's share identifier (canonical ID, falling
// back to version ID) into the page URL, places the absolute URL on the
// clipboard, and shows a short confirmation notice.
func (a *App) CopyLink(doc types.Document) {
	if a.pageURL == nil {
		return
	}
	q := a.pageURL.Query()
	q.Set(docParam, doc.ShareID())
	a.pageURL.RawQuery = q.Encode()

	link := a.pageURL.String()
	if a.clip != nil {
		if err := a.clip.Write(link); err != nil {
			a.log.Warn("clipboard write failed", zap.Error(err))
		}
	}
	a.showNotice("Link copied", CopyNoticeDuration)
}

// ShareLink returns the page URL as last written by CopyLink.
func (a *App) ShareLink() string {
	if a.pageURL == nil {
		return ""
	}
	return a.pageURL.String()
}
