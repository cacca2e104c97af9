package records

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/elemquiz/internal/mode"
)

// failingKV returns err from every call.
type failingKV struct {
	err error
}

func (f failingKV) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f failingKV) Set(context.Context, string, string) error         { return f.err }
func (f failingKV) Delete(context.Context, ...string) error           { return f.err }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestKey(t *testing.T) {
	assert.Equal(t, "elemquiz_best_v1_atomic_number", Key(mode.AtomicNumber))
	assert.Equal(t, "elemquiz_best_v1_periodic_table", Key(mode.PeriodicTable))
}

func TestWriteRead_RoundTrip(t *testing.T) {
	ctx := context.Background()
	at := time.UnixMilli(1767225600000)
	s := New(NewMemoryKV(), WithClock(fixedClock(at)))

	s.Write(ctx, mode.ElementName, 65.4)

	rec, ok := s.Read(ctx, mode.ElementName)
	require.True(t, ok)
	assert.InDelta(t, 65.4, rec.ElapsedSeconds, 1e-9)
	assert.True(t, rec.RecordedAt.Equal(at))

	_, ok = s.Read(ctx, mode.AtomicNumber)
	assert.False(t, ok, "other modes stay empty")
}

func TestWrite_OverwritesUnconditionally(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryKV())

	s.Write(ctx, mode.AtomicNumber, 50)
	s.Write(ctx, mode.AtomicNumber, 80)

	rec, ok := s.Read(ctx, mode.AtomicNumber)
	require.True(t, ok)
	assert.Equal(t, 80.0, rec.ElapsedSeconds)
}

func TestRead_InvalidPayloads(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"not json", "sixty"},
		{"truncated", `{"elapsedSeconds": 6`},
		{"array", `[60]`},
		{"missing field", `{"recordedAt": 1}`},
		{"string seconds", `{"elapsedSeconds": "60"}`},
		{"null seconds", `{"elapsedSeconds": null}`},
		{"negative", `{"elapsedSeconds": -1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := NewMemoryKV()
			require.NoError(t, kv.Set(context.Background(), Key(mode.AtomicNumber), tt.raw))

			rec, ok := New(kv).Read(context.Background(), mode.AtomicNumber)
			assert.False(t, ok)
			assert.Nil(t, rec)
		})
	}
}

func TestRead_MissingTimestampStillValid(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(context.Background(), Key(mode.PeriodicTable), `{"elapsedSeconds": 72.5}`))

	rec, ok := New(kv).Read(context.Background(), mode.PeriodicTable)
	require.True(t, ok)
	assert.Equal(t, 72.5, rec.ElapsedSeconds)
	assert.True(t, rec.RecordedAt.IsZero())
}

func TestFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	s := New(failingKV{err: errors.New("quota exceeded")})

	assert.NotPanics(t, func() {
		s.Write(ctx, mode.AtomicNumber, 10)
		s.ClearAll(ctx)
	})
	_, ok := s.Read(ctx, mode.AtomicNumber)
	assert.False(t, ok)
	assert.Empty(t, s.All(ctx))
}

func TestClearAll(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(ctx, "unrelated", "keep"))
	s := New(kv)

	for _, m := range mode.All() {
		s.Write(ctx, m, 99)
	}
	require.Len(t, s.All(ctx), 3)

	s.ClearAll(ctx)
	assert.Empty(t, s.All(ctx))

	v, ok, _ := kv.Get(ctx, "unrelated")
	assert.True(t, ok)
	assert.Equal(t, "keep", v)
}
