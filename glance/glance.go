// Package glance shares the ledger with read-only surfaces such as a home
// screen widget.
//
// After every save the whole snapshot is published under a fixed group and
// key. Readers only decode a reduced View: the daily allowance left for the
// day and the main savings buffer. A reader never fails, it shows NoData.
package glance

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/etnz/drip/date"
	"github.com/etnz/drip/logger"
	"github.com/etnz/drip/store"
)

const (
	// GroupID names the location shared by the ledger and its readers.
	GroupID = "group.drip.ledger"
	// StateKey names the published snapshot within the group.
	StateKey = "financialState"
	// RefreshInterval is how often readers refresh on their own.
	RefreshInterval = 15 * time.Minute
)

// Publisher shares a serialized snapshot.
type Publisher interface {
	Publish(ctx context.Context, data []byte) error
}

// statePath is where a snapshot is shared below root.
func statePath(root string) string { return filepath.Join(root, GroupID, StateKey+".json") }

// DirPublisher writes the snapshot in a directory shared with readers.
type DirPublisher struct {
	Root string
}

// Publish replaces the shared snapshot atomically.
func (p DirPublisher) Publish(ctx context.Context, data []byte) error {
	path := statePath(p.Root)
	if err := store.WriteFileAtomic(path, data); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug("published snapshot", "path", path, "size", len(data))
	return nil
}

// Reader reads the View from a directory written by a DirPublisher.
type Reader struct {
	Root string
}

// Read returns the view for that day, NoData if the shared snapshot is
// missing or cannot be decoded.
func (r Reader) Read(ctx context.Context, on date.Date) View {
	log := logger.FromContext(ctx)
	data, err := os.ReadFile(statePath(r.Root))
	if err != nil {
		log.Debug("no shared snapshot", "error", err)
		return NoData(on)
	}
	v, err := decode(data, on)
	if err != nil {
		log.Warn("failed to decode shared snapshot", "error", err)
		return NoData(on)
	}
	return v
}

// ViewReader reads the View of a day.
type ViewReader interface {
	Read(ctx context.Context, on date.Date) View
}

// Watch calls fn with a fresh view right away, then every interval, until
// ctx is done. today is asked for the day on each refresh.
func Watch(ctx context.Context, r ViewReader, today func() date.Date, interval time.Duration, fn func(View)) {
	fn(r.Read(ctx, today()))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(r.Read(ctx, today()))
		}
	}
}
