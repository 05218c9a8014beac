package rest

import (
	"net/http"

	"github.com/heartmarshall/promptcycle-backend/internal/transport/middleware"
)

// Routes binds the handlers to their paths.
type Routes struct {
	Health  *HealthHandler
	Cycle   *CycleHandler
	Trigger *TriggerHandler
	// TriggerGuard wraps only the trigger endpoint.
	TriggerGuard middleware.Middleware
}

// Handler returns the route table. Request-wide middleware is applied by
// the caller.
func (rt Routes) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)

	mux.HandleFunc("GET /v1/cycle", rt.Cycle.Phase)
	mux.HandleFunc("GET /v1/prompts/today", rt.Cycle.Today)
	mux.HandleFunc("GET /v1/prompts/{date}/window", rt.Cycle.Window)
	mux.HandleFunc("GET /v1/prompts/{date}/deadline", rt.Cycle.Deadline)
	mux.HandleFunc("POST /v1/prompts/{date}/open", rt.Cycle.Open)

	trigger := middleware.Chain(rt.TriggerGuard)(http.HandlerFunc(rt.Trigger.Run))
	mux.Handle("POST /internal/triggers/{tick}", trigger)

	return mux
}
