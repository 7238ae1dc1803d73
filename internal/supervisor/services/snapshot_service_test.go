// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

type mockSaver struct {
	mu      sync.Mutex
	calls   int
	err     error
	expired []bool
}

func (m *mockSaver) SaveUserData(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.expired = append(m.expired, ctx.Err() != nil)
	return m.err
}

func (m *mockSaver) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func TestSnapshotService_Interface(t *testing.T) {
	var _ suture.Service = (*SnapshotService)(nil)
}

func TestSnapshotService_String(t *testing.T) {
	svc := NewSnapshotService(&mockSaver{}, SnapshotServiceConfig{}, zerolog.Nop())
	if got := svc.String(); got != "snapshot-service" {
		t.Errorf("String() = %q, want %q", got, "snapshot-service")
	}
	if svc.config.Timeout != time.Minute {
		t.Errorf("default Timeout = %v, want 1m", svc.config.Timeout)
	}
}

func TestSnapshotService_Serve(t *testing.T) {
	tests := []struct {
		name        string
		cfg         SnapshotServiceConfig
		run         time.Duration
		saveErr     error
		wantAtLeast int
		wantAtMost  int
	}{
		{
			name:        "periodic saves and a final save",
			cfg:         SnapshotServiceConfig{Interval: 20 * time.Millisecond, SaveOnStop: true},
			run:         110 * time.Millisecond,
			wantAtLeast: 3,
			wantAtMost:  7,
		},
		{
			name:        "no interval saves only on stop",
			cfg:         SnapshotServiceConfig{SaveOnStop: true},
			run:         50 * time.Millisecond,
			wantAtLeast: 1,
			wantAtMost:  1,
		},
		{
			name:        "nothing configured never saves",
			cfg:         SnapshotServiceConfig{},
			run:         50 * time.Millisecond,
			wantAtLeast: 0,
			wantAtMost:  0,
		},
		{
			name:        "failed saves keep the service running",
			cfg:         SnapshotServiceConfig{Interval: 20 * time.Millisecond},
			run:         110 * time.Millisecond,
			saveErr:     errors.New("disk full"),
			wantAtLeast: 2,
			wantAtMost:  6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saver := &mockSaver{err: tt.saveErr}
			svc := NewSnapshotService(saver, tt.cfg, zerolog.Nop())

			ctx, cancel := context.WithTimeout(context.Background(), tt.run)
			defer cancel()

			err := svc.Serve(ctx)
			if !errors.Is(err, context.DeadlineExceeded) {
				t.Errorf("Serve() = %v, want context.DeadlineExceeded", err)
			}
			if got := saver.Calls(); got < tt.wantAtLeast || got > tt.wantAtMost {
				t.Errorf("saves = %d, want %d..%d", got, tt.wantAtLeast, tt.wantAtMost)
			}
		})
	}
}

func TestSnapshotService_FinalSaveHasLiveContext(t *testing.T) {
	saver := &mockSaver{}
	svc := NewSnapshotService(saver, SnapshotServiceConfig{SaveOnStop: true}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = svc.Serve(ctx)

	if len(saver.expired) != 1 {
		t.Fatalf("saves = %d, want 1", len(saver.expired))
	}
	if saver.expired[0] {
		t.Error("final save received an already canceled context")
	}
}
