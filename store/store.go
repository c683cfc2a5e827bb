// Package store persists drip snapshots.
//
// A Store is built on a Backend holding raw snapshot records. Backends may
// end up with several records, for instance when two devices synchronize the
// same collection; Load keeps the largest one and deletes the others.
package store

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/etnz/drip"
	"github.com/etnz/drip/logger"
)

// DefaultDSN is the store used when none is configured.
const DefaultDSN = "file:drip.json"

// DefaultKey is the record key written by a fresh store.
const DefaultKey = "snapshot"

// Store loads and saves the single snapshot of a ledger.
type Store interface {
	// Load never fails: when there is no data, or it cannot be read, the
	// default snapshot is returned and the reason is logged.
	Load(ctx context.Context) *drip.Snapshot
	// Save writes s. A snapshot that cannot be encoded is logged and dropped.
	Save(ctx context.Context, s *drip.Snapshot) error
	Close() error
}

// Record is one serialized snapshot in a backend.
type Record struct {
	Key  string
	Data []byte
}

// Backend stores raw snapshot records.
type Backend interface {
	Records(ctx context.Context) ([]Record, error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
	String() string
}

// New returns a Store on top of b.
func New(b Backend) Store { return &snapshotStore{backend: b, key: DefaultKey} }

// Open parses dsn and opens the matching backend. Supported forms are
// "file:<path>", "sqlite:<path>" and "firestore:<project>/<collection>".
func Open(ctx context.Context, dsn string) (Store, error) {
	scheme, rest, ok := strings.Cut(dsn, ":")
	if !ok || rest == "" {
		return nil, NewError("open", fmt.Sprintf("invalid store %q", dsn), nil)
	}
	switch scheme {
	case "file":
		return New(NewFile(rest)), nil
	case "sqlite":
		b, err := OpenSQLite(ctx, rest)
		if err != nil {
			return nil, err
		}
		return New(b), nil
	case "firestore":
		project, collection, ok := strings.Cut(rest, "/")
		if !ok || project == "" || collection == "" {
			return nil, NewError("open", fmt.Sprintf("invalid firestore store %q, want firestore:<project>/<collection>", dsn), nil)
		}
		b, err := OpenFirestore(ctx, project, collection)
		if err != nil {
			return nil, err
		}
		return New(b), nil
	}
	return nil, NewError("open", fmt.Sprintf("unknown store scheme %q", scheme), nil)
}

// PickLargest returns the record with the most serialized bytes, the first
// one on ties, and the records to discard. ok is false when records is empty.
func PickLargest(records []Record) (keep Record, discard []Record, ok bool) {
	if len(records) == 0 {
		return Record{}, nil, false
	}
	best := 0
	for i, r := range records {
		if len(r.Data) > len(records[best].Data) {
			best = i
		}
	}
	for i, r := range records {
		if i != best {
			discard = append(discard, r)
		}
	}
	return records[best], discard, true
}

type snapshotStore struct {
	backend Backend
	key     string // record written by Save
}

func (s *snapshotStore) Load(ctx context.Context) *drip.Snapshot {
	log := logger.FromContext(ctx).With("store", s.backend.String())

	records, err := s.backend.Records(ctx)
	if err != nil {
		log.Warn("failed to read snapshot, using defaults", "error", err)
		return drip.NewSnapshot()
	}
	// records that fail to decode are skipped, never deleted; duplicates of
	// the kept record are deleted once it decoded.
	candidates := records
	for {
		keep, discard, ok := PickLargest(candidates)
		if !ok {
			if len(records) == 0 {
				log.Info("no snapshot yet, using defaults")
			} else {
				log.Warn("no snapshot could be decoded, using defaults")
			}
			return drip.NewSnapshot()
		}
		snap, err := drip.DecodeSnapshot(bytes.NewReader(keep.Data))
		if err != nil {
			log.Warn("failed to decode snapshot", "key", keep.Key, "error", err)
			candidates = discard
			continue
		}
		s.key = keep.Key
		if len(discard) > 0 {
			keys := make([]string, len(discard))
			for i, r := range discard {
				keys[i] = r.Key
			}
			log.Warn("discarding duplicate snapshots", "kept", keep.Key, "discarded", keys)
			if err := s.backend.Delete(ctx, keys...); err != nil {
				log.Warn("failed to delete duplicate snapshots", "error", err)
			}
		}
		return snap
	}
}

func (s *snapshotStore) Save(ctx context.Context, snap *drip.Snapshot) error {
	var buf bytes.Buffer
	if err := drip.EncodeSnapshot(&buf, snap); err != nil {
		logger.FromContext(ctx).Error("failed to encode snapshot, write dropped", "store", s.backend.String(), "error", err)
		return nil
	}
	if err := s.backend.Put(ctx, s.key, buf.Bytes()); err != nil {
		return NewError("save", fmt.Sprintf("failed to write snapshot to %s", s.backend), err)
	}
	return nil
}

func (s *snapshotStore) Close() error { return s.backend.Close() }
