// Package docsync mirrors the server's document listing into a local
// directory. The cache is disposable: any detected change wipes the
// directory and refetches everything.
package docsync

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/disco-express/kiosk/internal/client"
	"github.com/disco-express/kiosk/internal/logger"
)

// Syncer polls the remote document list on a fixed interval. Lists are
// compared as ordered sequences, so a reorder counts as a change. The
// notify callback fires at the end of every tick, changed or not, so the
// UI re-enumerates the directory.
type Syncer struct {
	client   client.Client
	dir      string
	interval time.Duration
	notify   func()

	// last is the listing of the last fully completed sync. nil means
	// unknown and forces a resync, which is how a torn cache heals: any
	// mid-sync failure resets last to nil so the next successful poll
	// rebuilds the directory from scratch.
	last []string
}

func New(c client.Client, dir string, interval time.Duration, notify func()) *Syncer {
	return &Syncer{client: c, dir: dir, interval: interval, notify: notify}
}

// Run ticks immediately and then on the configured interval until ctx is
// cancelled. Ticks run on this goroutine and never interleave.
func (s *Syncer) Run(ctx context.Context) {
	s.tick(ctx)

	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.tick(ctx)
		}
	}
}

func (s *Syncer) tick(ctx context.Context) {
	// The UI refresh happens every tick regardless of outcome.
	if s.notify != nil {
		defer s.notify()
	}

	docs, err := s.client.ListDocuments(ctx)
	if err != nil {
		// Swallowed per tick; the next tick retries naturally.
		logger.Log.Debug("document list fetch failed", zap.Error(err))
		return
	}
	if docs == nil {
		docs = []string{}
	}

	if s.last != nil && equalLists(docs, s.last) {
		return
	}

	logger.Log.Info("document listing changed, rebuilding cache",
		zap.Int("documents", len(docs)))

	if err := os.RemoveAll(s.dir); err != nil {
		logger.Log.Warn("clearing document cache failed", zap.Error(err))
		s.last = nil
		return
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		logger.Log.Warn("recreating document cache failed", zap.Error(err))
		s.last = nil
		return
	}

	for _, name := range docs {
		data, err := s.client.GetDocument(ctx, name)
		if err != nil {
			logger.Log.Warn("document fetch failed, aborting sync",
				zap.String("document", name), zap.Error(err))
			s.last = nil
			return
		}
		path := filepath.Join(s.dir, filepath.Base(name))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			logger.Log.Warn("document write failed, aborting sync",
				zap.String("document", name), zap.Error(err))
			s.last = nil
			return
		}
	}

	s.last = docs
}

func equalLists(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
