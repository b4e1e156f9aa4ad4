package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"ondemand-engine/internal/domain"
	"ondemand-engine/internal/events"
)

// ProfileSource is the slice of the state store the refresher needs.
type ProfileSource interface {
	Authenticated() bool
	FetchUserProfile(ctx context.Context) (domain.UserProfile, error)
}

type Publisher interface {
	Publish(evt string)
}

// Status is the last known outcome of the background profile refresh.
type Status struct {
	Running   bool   `json:"running"`
	LastRunAt string `json:"lastRunAt,omitempty"`
	LastOkAt  string `json:"lastOkAt,omitempty"`
	LastError string `json:"lastError,omitempty"`
	Runs      int    `json:"runs"`
	Skipped   int    `json:"skipped"`
}

// LoadStatus returns the zero Status when nothing has been stored yet.
func LoadStatus(v *atomic.Value) Status {
	if st, ok := v.Load().(Status); ok {
		return st
	}
	return Status{}
}

// ProfileRefresh re-fetches the signed-in user's profile. Signed-out ticks
// are counted and skipped. Each successful fetch is announced on pub.
func ProfileRefresh(src ProfileSource, pub Publisher, status *atomic.Value, now func() time.Time) Task {
	if now == nil {
		now = time.Now
	}
	return func(ctx context.Context) error {
		st := LoadStatus(status)
		if !src.Authenticated() {
			st.Skipped++
			status.Store(st)
			return nil
		}

		st.Running = true
		st.LastRunAt = now().UTC().Format(time.RFC3339)
		status.Store(st)

		p, err := src.FetchUserProfile(ctx)

		st = LoadStatus(status)
		st.Running = false
		st.Runs++
		if err != nil {
			st.LastError = err.Error()
			status.Store(st)
			return err
		}
		st.LastError = ""
		st.LastOkAt = now().UTC().Format(time.RFC3339)
		status.Store(st)

		if pub != nil {
			pub.Publish(events.MakeEventAt(now(), "", events.TypeProfileRefreshed, map[string]string{"userId": p.ID}))
		}
		return nil
	}
}
