package hc

import (
	"encoding/json"
	"net/http"
	"time"
)

// Handler reports the build version, the uptime and the state of the
// session returned by state.
func Handler(version string, state func() string) http.Handler {
	t := time.Now()
	fn := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"version": version,
			"uptime":  time.Since(t).String(),
			"session": state(),
		})
	}

	return http.HandlerFunc(fn)
}
