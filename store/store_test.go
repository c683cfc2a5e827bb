package store

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"reflect"
	"testing"

	"github.com/etnz/drip"
	"github.com/etnz/drip/date"
	"github.com/etnz/drip/logger"
)

// fakeBackend keeps records in memory.
type fakeBackend struct {
	records []Record
	deleted []string
	readErr error
	putErr  error
	puts    map[string][]byte
}

func (f *fakeBackend) Records(ctx context.Context) ([]Record, error) { return f.records, f.readErr }

func (f *fakeBackend) Put(ctx context.Context, key string, data []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	if f.puts == nil {
		f.puts = map[string][]byte{}
	}
	f.puts[key] = data
	return nil
}

func (f *fakeBackend) Delete(ctx context.Context, keys ...string) error {
	f.deleted = append(f.deleted, keys...)
	return nil
}

func (f *fakeBackend) Close() error   { return nil }
func (f *fakeBackend) String() string { return "fake" }

func testContext() context.Context {
	return logger.ToContext(context.Background(), slog.New(logger.NewTestHandler(slog.LevelInfo)))
}

func encode(t *testing.T, s *drip.Snapshot) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := drip.EncodeSnapshot(&buf, s); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestPickLargest(t *testing.T) {
	testCases := []struct {
		name        string
		records     []Record
		wantKey     string
		wantDiscard []string
		wantOK      bool
	}{
		{"empty", nil, "", nil, false},
		{"single", []Record{{"a", []byte("{}")}}, "a", nil, true},
		{"largest wins", []Record{{"a", []byte("{}")}, {"b", []byte(`{"x":1}`)}, {"c", []byte("{ }")}}, "b", []string{"a", "c"}, true},
		{"first wins ties", []Record{{"a", []byte("12")}, {"b", []byte("34")}}, "a", []string{"b"}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			keep, discard, ok := PickLargest(tc.records)
			if ok != tc.wantOK || keep.Key != tc.wantKey {
				t.Errorf("PickLargest() = %q, %v, want %q, %v", keep.Key, ok, tc.wantKey, tc.wantOK)
			}
			var keys []string
			for _, r := range discard {
				keys = append(keys, r.Key)
			}
			if !reflect.DeepEqual(keys, tc.wantDiscard) {
				t.Errorf("discarded %v, want %v", keys, tc.wantDiscard)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	testCases := []struct {
		name    string
		backend *fakeBackend
	}{
		{"no record", &fakeBackend{}},
		{"read error", &fakeBackend{readErr: errors.New("disk on fire")}},
		{"corrupt record", &fakeBackend{records: []Record{{"a", []byte("{not json")}}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := New(tc.backend).Load(testContext())
			if got == nil {
				t.Fatalf("Load() = nil")
			}
			if !got.DailyAllowance.Equal(drip.DefaultDailyAllowance) || len(got.DailyLogs) != 0 {
				t.Errorf("Load() = %+v, want the default snapshot", got)
			}
		})
	}
}

func TestLoad_MergesDuplicates(t *testing.T) {
	small := drip.NewSnapshot()
	large := drip.BaselineSeed()
	b := &fakeBackend{records: []Record{
		{"phone", encode(t, small)},
		{"tablet", encode(t, large)},
	}}
	s := New(b)
	ctx := testContext()

	got := s.Load(ctx)
	if !got.Bank.Equal(large.Bank) {
		t.Errorf("Load() bank = %s, want %s", got.Bank, large.Bank)
	}
	if !reflect.DeepEqual(b.deleted, []string{"phone"}) {
		t.Errorf("deleted %v, want [phone]", b.deleted)
	}

	// saves go to the record that was kept
	got.WithdrawCash(drip.D(10), "atm", date.New(2025, 10, 20))
	if err := s.Save(ctx, got); err != nil {
		t.Fatal(err)
	}
	if _, ok := b.puts["tablet"]; !ok || len(b.puts) != 1 {
		t.Errorf("Save() wrote %v, want only tablet", b.puts)
	}
}

func TestLoad_SkipsCorruptLargest(t *testing.T) {
	valid := drip.BaselineSeed()
	corrupt := append([]byte("{not json"), bytes.Repeat([]byte(" "), 10000)...)
	b := &fakeBackend{records: []Record{
		{"phone", encode(t, valid)},
		{"tablet", corrupt},
		{"laptop", encode(t, drip.NewSnapshot())},
	}}
	s := New(b)
	ctx := testContext()

	got := s.Load(ctx)
	if !got.Bank.Equal(valid.Bank) {
		t.Errorf("Load() bank = %s, want %s from the largest valid record", got.Bank, valid.Bank)
	}
	// only the smaller duplicate of the kept record goes, the corrupt one stays
	if !reflect.DeepEqual(b.deleted, []string{"laptop"}) {
		t.Errorf("deleted %v, want [laptop]", b.deleted)
	}
	if err := s.Save(ctx, got); err != nil {
		t.Fatal(err)
	}
	if _, ok := b.puts["phone"]; !ok || len(b.puts) != 1 {
		t.Errorf("Save() wrote %v, want only phone", b.puts)
	}
}

func TestLoad_AllCorruptDeletesNothing(t *testing.T) {
	b := &fakeBackend{records: []Record{
		{"phone", []byte("{not json")},
		{"tablet", []byte("{still not json")},
	}}
	got := New(b).Load(testContext())
	if !got.DailyAllowance.Equal(drip.DefaultDailyAllowance) {
		t.Errorf("Load() = %+v, want the default snapshot", got)
	}
	if len(b.deleted) != 0 {
		t.Errorf("deleted %v, want nothing", b.deleted)
	}
}

func TestSave_Error(t *testing.T) {
	cause := errors.New("quota exceeded")
	err := New(&fakeBackend{putErr: cause}).Save(testContext(), drip.NewSnapshot())

	var serr *Error
	if !errors.As(err, &serr) || serr.Op != "save" {
		t.Fatalf("Save() error = %v, want a save *Error", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("Save() error does not wrap its cause")
	}
}

func TestOpen(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()

	for _, dsn := range []string{"file:" + dir + "/drip.json", "sqlite:" + dir + "/drip.db"} {
		s, err := Open(ctx, dsn)
		if err != nil {
			t.Fatalf("Open(%q) error = %v", dsn, err)
		}
		s.Close()
	}

	for _, dsn := range []string{"", "drip.json", "file:", "ftp:host", "firestore:project"} {
		if _, err := Open(ctx, dsn); err == nil {
			t.Errorf("Open(%q) succeeded", dsn)
		}
	}
}
