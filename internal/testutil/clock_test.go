// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFakeClock(t *testing.T) {
	t.Parallel()

	clock := NewFakeClock(time.Time{})
	start := clock.Now()
	if !start.Equal(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("NewFakeClock(zero).Now() = %v, want 2020-01-01", start)
	}

	clock.Advance(61200 * time.Millisecond)
	if got := clock.Since(start); got != 61200*time.Millisecond {
		t.Errorf("Since() after Advance = %v, want 1m1.2s", got)
	}

	later := start.Add(time.Hour)
	clock.Set(later)
	if got := clock.Now(); !got.Equal(later) {
		t.Errorf("Now() after Set = %v, want %v", got, later)
	}
}

func TestMustWriteProperties(t *testing.T) {
	t.Parallel()

	path := MustWriteProperties(t, filepath.Join(t.TempDir(), "conf", "a.properties"), "a", "1", "b", "")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got, want := string(data), "a=1\nb=\n"; got != want {
		t.Errorf("file content = %q, want %q", got, want)
	}
}
