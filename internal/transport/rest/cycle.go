package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/promptcycle-backend/internal/service/daily"
	"github.com/heartmarshall/promptcycle-backend/pkg/cycle"
)

type cycleService interface {
	GetPhase(ctx context.Context) daily.PhaseView
	GetToday(ctx context.Context) (daily.TodayView, error)
	GetWindow(ctx context.Context, date string) (cycle.PromptWindow, error)
	GetDeadline(ctx context.Context, date string) (daily.DeadlineView, error)
	OpenPrompt(ctx context.Context, date string) (daily.DeadlineView, error)
}

// CycleHandler serves the phase, prompt window and deadline endpoints.
type CycleHandler struct {
	svc cycleService
	log *slog.Logger
}

// NewCycleHandler creates a CycleHandler.
func NewCycleHandler(svc cycleService, logger *slog.Logger) *CycleHandler {
	return &CycleHandler{svc: svc, log: logger.With("handler", "cycle")}
}

type phaseResponse struct {
	Phase           string    `json:"phase"`
	CycleDate       string    `json:"cycleDate"`
	StartedAt       time.Time `json:"startedAt"`
	EndsAt          time.Time `json:"endsAt"`
	TimeRemainingMs int64     `json:"timeRemainingMs"`
	Overridden      bool      `json:"overridden,omitempty"`
}

type windowResponse struct {
	Date            string    `json:"date"`
	AvailableAt     time.Time `json:"availableAt"`
	ResponseCloseAt time.Time `json:"responseCloseAt"`
	ReleaseAt       time.Time `json:"releaseAt"`
	State           string    `json:"state,omitempty"`
}

type promptResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Text string `json:"text"`
}

type todayResponse struct {
	Available bool            `json:"available"`
	Prompt    *promptResponse `json:"prompt,omitempty"`
	Window    windowResponse  `json:"window"`
}

type deadlineResponse struct {
	Date        string     `json:"date"`
	Opened      bool       `json:"opened"`
	OpenedAt    *time.Time `json:"openedAt,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	RemainingMs *int64     `json:"remainingMs,omitempty"`
	Clamped     bool       `json:"clamped,omitempty"`
	Closed      bool       `json:"closed,omitempty"`
}

// Phase handles GET /v1/cycle.
func (h *CycleHandler) Phase(w http.ResponseWriter, r *http.Request) {
	v := h.svc.GetPhase(r.Context())
	writeJSON(w, http.StatusOK, phaseResponse{
		Phase:           v.Phase.String(),
		CycleDate:       v.CycleDate.String(),
		StartedAt:       v.StartedAt.UTC(),
		EndsAt:          v.EndsAt.UTC(),
		TimeRemainingMs: v.TimeRemaining.Milliseconds(),
		Overridden:      v.Overridden,
	})
}

// Today handles GET /v1/prompts/today.
func (h *CycleHandler) Today(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.GetToday(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := todayResponse{
		Available: v.Available(),
		Window:    toWindowResponse(v.Window, v.State),
	}
	if v.Prompt != nil {
		resp.Prompt = &promptResponse{ID: v.Prompt.ID.String(), Date: v.Prompt.Date.String(), Text: v.Prompt.Text}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Window handles GET /v1/prompts/{date}/window.
func (h *CycleHandler) Window(w http.ResponseWriter, r *http.Request) {
	win, err := h.svc.GetWindow(r.Context(), r.PathValue("date"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWindowResponse(win, ""))
}

// Deadline handles GET /v1/prompts/{date}/deadline.
func (h *CycleHandler) Deadline(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.GetDeadline(r.Context(), r.PathValue("date"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeadlineResponse(v))
}

// Open handles POST /v1/prompts/{date}/open.
func (h *CycleHandler) Open(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.OpenPrompt(r.Context(), r.PathValue("date"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeadlineResponse(v))
}

func toWindowResponse(w cycle.PromptWindow, state cycle.WindowState) windowResponse {
	return windowResponse{
		Date:            w.Date.String(),
		AvailableAt:     w.AvailableAt.UTC(),
		ResponseCloseAt: w.ResponseCloseAt.UTC(),
		ReleaseAt:       w.ReleaseAt.UTC(),
		State:           string(state),
	}
}

func toDeadlineResponse(v daily.DeadlineView) deadlineResponse {
	resp := deadlineResponse{Date: v.Window.Date.String(), Opened: v.Opened}
	if !v.Opened {
		return resp
	}

	openedAt := v.Deadline.OpenedAt.UTC()
	deadline := v.Deadline.Deadline.UTC()
	remaining := v.Deadline.Remaining.Milliseconds()

	resp.OpenedAt = &openedAt
	resp.Deadline = &deadline
	resp.RemainingMs = &remaining
	resp.Clamped = v.Deadline.Clamped
	resp.Closed = v.Deadline.Closed
	return resp
}
