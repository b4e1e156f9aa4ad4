package httpapi

import (
	"net/http"
	"sync/atomic"
	"time"

	"ondemand-engine/internal/events"
	"ondemand-engine/internal/scheduler"
	"ondemand-engine/internal/state"
)

type HealthHandler struct {
	Dir   Directory
	State *state.Store
	Hub   *events.Hub
	Sync  *atomic.Value
}

func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	out := map[string]any{
		"ok":   true,
		"time": time.Now().UTC().Format(time.RFC3339),
	}
	if h.State != nil {
		out["authenticated"] = h.State.Authenticated()
	}
	if h.Hub != nil {
		out["subscribers"] = h.Hub.Subscribers()
	}
	if h.Sync != nil {
		out["sync"] = scheduler.LoadStatus(h.Sync)
	}
	if h.Dir != nil {
		stats, err := h.Dir.Stats(r.Context())
		if err != nil {
			out["ok"] = false
			out["directory_error"] = err.Error()
		} else {
			out["directory"] = stats
		}
	}
	writeJSON(w, out)
}
