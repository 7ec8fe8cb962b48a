package checkins

import (
	"context"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitcoach/internal/auth"
	"github.com/2beens/fitcoach/internal/checkins/eligibility"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=checkins_test

type statusService interface {
	Status(ctx context.Context, userID string, now time.Time) (*eligibility.Status, error)
	DismissReminder(ctx context.Context, userID string, now time.Time) error
}

type Handler struct {
	service statusService
}

func NewHandler(service statusService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleEligibility(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.checkins.eligibility")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	status, err := h.service.Status(ctx, session.UserID, pkg.RequestNow(r))
	if err != nil {
		log.Errorf("eligibility of %s: %s", session.UserID, err)
		http.Error(w, "failed to get eligibility", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, status, http.StatusOK)
}

// HandleDismissReminder hides the weekly reminder until the end of the current week
// and returns the updated status.
func (h *Handler) HandleDismissReminder(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.checkins.reminder.dismiss")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	now := pkg.RequestNow(r)
	if err := h.service.DismissReminder(ctx, session.UserID, now); err != nil {
		log.Errorf("dismiss reminder of %s: %s", session.UserID, err)
		http.Error(w, "failed to dismiss reminder", http.StatusInternalServerError)
		return
	}

	status, err := h.service.Status(ctx, session.UserID, now)
	if err != nil {
		log.Errorf("eligibility of %s after dismissal: %s", session.UserID, err)
		http.Error(w, "failed to get eligibility", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, status, http.StatusOK)
}
