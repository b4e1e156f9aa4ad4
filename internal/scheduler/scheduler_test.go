package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"ondemand-engine/internal/domain"
)

type fakeSource struct {
	authed bool
	err    error
	calls  atomic.Int32
}

func (f *fakeSource) Authenticated() bool { return f.authed }

func (f *fakeSource) FetchUserProfile(ctx context.Context) (domain.UserProfile, error) {
	f.calls.Add(1)
	if f.err != nil {
		return domain.UserProfile{}, f.err
	}
	return domain.UserProfile{ID: "u1"}, nil
}

type recorder struct{ got []string }

func (r *recorder) Publish(evt string) { r.got = append(r.got, evt) }

func fixedNow() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

func TestProfileRefreshSkipsWhenSignedOut(t *testing.T) {
	src := &fakeSource{}
	var status atomic.Value
	task := ProfileRefresh(src, nil, &status, fixedNow)

	if err := task(context.Background()); err != nil {
		t.Fatal(err)
	}
	if src.calls.Load() != 0 {
		t.Fatal("fetched while signed out")
	}
	if st := LoadStatus(&status); st.Skipped != 1 || st.Runs != 0 {
		t.Fatalf("status = %+v", st)
	}
}

func TestProfileRefreshRecordsOutcome(t *testing.T) {
	src := &fakeSource{authed: true}
	pub := &recorder{}
	var status atomic.Value
	task := ProfileRefresh(src, pub, &status, fixedNow)

	if err := task(context.Background()); err != nil {
		t.Fatal(err)
	}
	st := LoadStatus(&status)
	if st.Runs != 1 || st.LastOkAt != "2024-03-01T12:00:00Z" || st.Running {
		t.Fatalf("status = %+v", st)
	}
	if len(pub.got) != 1 || !strings.Contains(pub.got[0], `"profile.refreshed"`) || !strings.Contains(pub.got[0], `"u1"`) {
		t.Fatalf("events = %v", pub.got)
	}

	src.err = errors.New("boom")
	if err := task(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	st = LoadStatus(&status)
	if st.Runs != 2 || st.LastError != "boom" || st.LastOkAt == "" {
		t.Fatalf("status = %+v", st)
	}
	if len(pub.got) != 1 {
		t.Fatalf("failed refresh published: %v", pub.got)
	}
}

func TestEveryRunsUntilCanceled(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx, cancel := context.WithCancel(context.Background())
	var n atomic.Int32

	done := make(chan struct{})
	go func() {
		Every(ctx, log, 5*time.Millisecond, "count", func(context.Context) error {
			if n.Add(1) >= 3 {
				cancel()
			}
			return nil
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Every did not return after cancel")
	}
	if n.Load() < 3 {
		t.Fatalf("ran %d times", n.Load())
	}
}

func TestEveryRunsDoNotOverlap(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := &fakeSource{}
	var status atomic.Value
	refresh := ProfileRefresh(src, nil, &status, fixedNow)

	var inflight, overlaps, runs atomic.Int32
	Every(ctx, log, time.Millisecond, "refresh", func(ctx context.Context) error {
		if inflight.Add(1) > 1 {
			overlaps.Add(1)
		}
		defer inflight.Add(-1)
		time.Sleep(3 * time.Millisecond)
		err := refresh(ctx)
		if runs.Add(1) >= 5 {
			cancel()
		}
		return err
	})

	if overlaps.Load() != 0 {
		t.Fatalf("%d overlapping runs", overlaps.Load())
	}
	if st := LoadStatus(&status); int32(st.Skipped) != runs.Load() {
		t.Fatalf("skipped = %d, runs = %d", st.Skipped, runs.Load())
	}
}

func TestEveryDisabled(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	called := false
	Every(context.Background(), log, 0, "off", func(context.Context) error {
		called = true
		return nil
	})
	if called {
		t.Fatal("disabled task ran")
	}
}
