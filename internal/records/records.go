// Package records keeps the best Main-phase time per mode.
//
// Records are stored as small JSON documents in a key-value surface. Any
// record that is absent or cannot be trusted reads as "no record"; write
// failures leave the previous value in place and are only logged.
package records

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/abhisek/elemquiz/internal/mode"
)

// KeyPrefix namespaces record keys; the mode identifier is appended.
const KeyPrefix = "elemquiz_best_v1_"

// KV is the persistence surface records are written to.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// BestRecord is the fastest Main run recorded for a mode.
type BestRecord struct {
	ElapsedSeconds float64
	RecordedAt     time.Time // zero when the stored record had no timestamp
}

// Store reads and writes best records.
type Store struct {
	kv     KV
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the timestamp source used by Write.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used for swallowed failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New creates a Store over kv.
func New(kv KV, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Key returns the storage key for m.
func Key(m mode.Mode) string {
	return KeyPrefix + m.ID()
}

// Read returns the stored record for m. The bool is false for a missing,
// malformed, or non-finite record.
func (s *Store) Read(ctx context.Context, m mode.Mode) (*BestRecord, bool) {
	raw, ok, err := s.kv.Get(ctx, Key(m))
	if err != nil {
		s.logger.Warn("read best record", "mode", m.ID(), "err", err)
		return nil, false
	}
	if !ok || raw == "" {
		return nil, false
	}
	return parse(raw)
}

func parse(raw string) (*BestRecord, bool) {
	if !gjson.Valid(raw) {
		return nil, false
	}
	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return nil, false
	}
	sec := doc.Get("elapsedSeconds")
	if sec.Type != gjson.Number {
		return nil, false
	}
	v := sec.Float()
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil, false
	}

	rec := &BestRecord{ElapsedSeconds: v}
	if at := doc.Get("recordedAt"); at.Type == gjson.Number {
		rec.RecordedAt = time.UnixMilli(at.Int())
	}
	return rec, true
}

// Write stores seconds as the record for m, replacing whatever was there.
// The caller decides whether the value is an improvement.
func (s *Store) Write(ctx context.Context, m mode.Mode, seconds float64) {
	payload, err := sjson.Set("", "elapsedSeconds", seconds)
	if err == nil {
		payload, err = sjson.Set(payload, "recordedAt", s.now().UnixMilli())
	}
	if err != nil {
		s.logger.Warn("encode best record", "mode", m.ID(), "err", err)
		return
	}
	if err := s.kv.Set(ctx, Key(m), payload); err != nil {
		s.logger.Warn("write best record", "mode", m.ID(), "err", err)
	}
}

// ClearAll removes the records of every mode.
func (s *Store) ClearAll(ctx context.Context) {
	keys := make([]string, 0, len(mode.All()))
	for _, m := range mode.All() {
		keys = append(keys, Key(m))
	}
	if err := s.kv.Delete(ctx, keys...); err != nil {
		s.logger.Warn("clear best records", "err", err)
	}
}

// All returns every mode that currently has a valid record.
func (s *Store) All(ctx context.Context) map[mode.Mode]BestRecord {
	out := make(map[mode.Mode]BestRecord)
	for _, m := range mode.All() {
		if rec, ok := s.Read(ctx, m); ok {
			out[m] = *rec
		}
	}
	return out
}
