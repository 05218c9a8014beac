package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/promptcycle-backend/internal/domain"
	"github.com/heartmarshall/promptcycle-backend/internal/service/notify"
	"github.com/heartmarshall/promptcycle-backend/pkg/ctxutil"
	"github.com/heartmarshall/promptcycle-backend/pkg/cycle"
)

type tickRunner interface {
	RunTick(ctx context.Context, tick cycle.Tick) (notify.Result, error)
}

// TriggerHandler serves the endpoint an external scheduler calls at each
// named tick.
type TriggerHandler struct {
	svc     tickRunner
	timeout time.Duration
	log     *slog.Logger
}

// NewTriggerHandler creates a TriggerHandler. Each invocation runs under
// timeout.
func NewTriggerHandler(svc tickRunner, timeout time.Duration, logger *slog.Logger) *TriggerHandler {
	return &TriggerHandler{svc: svc, timeout: timeout, log: logger.With("handler", "trigger")}
}

type triggerResponse struct {
	Tick      string `json:"tick"`
	CycleDate string `json:"cycleDate"`
	Decision  string `json:"decision"`
	Filter    string `json:"recipientFilter"`
	Claimed   bool   `json:"claimed"`
	Matched   int    `json:"matched"`
	Enqueued  int64  `json:"enqueued"`
}

// Run handles POST /internal/triggers/{tick}.
func (h *TriggerHandler) Run(w http.ResponseWriter, r *http.Request) {
	tick, err := cycle.ParseTick(r.PathValue("tick"))
	if err != nil {
		handleError(h.log, w, r, domain.InvalidCycleInput("tick", err))
		return
	}

	ctx, cancel := context.WithTimeout(ctxutil.WithTick(r.Context(), tick.String()), h.timeout)
	defer cancel()

	res, err := h.svc.RunTick(ctx, tick)
	if err != nil {
		handleError(h.log, w, r.WithContext(ctx), err)
		return
	}

	writeJSON(w, http.StatusOK, triggerResponse{
		Tick:      tick.String(),
		CycleDate: res.CycleDate.String(),
		Decision:  string(res.Decision.Type),
		Filter:    string(res.Decision.Filter),
		Claimed:   res.Claimed,
		Matched:   res.Recipients,
		Enqueued:  res.Enqueued,
	})
}
