package dashboard

import (
	"context"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitcoach/internal/auth"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type dashboardService interface {
	Get(ctx context.Context, session *auth.Session, userID string, now time.Time) (*Dashboard, error)
}

type Handler struct {
	service dashboardService
	users   auth.UserGetter
}

func NewHandler(service dashboardService, users auth.UserGetter) *Handler {
	return &Handler{
		service: service,
		users:   users,
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.get")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	userID, err := auth.ResolveTarget(ctx, h.users, session, r.URL.Query().Get("clientId"))
	if err != nil {
		if errors.Is(err, auth.ErrForbidden) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		log.Errorf("dashboard, resolve target: %s", err)
		http.Error(w, "failed to get dashboard", http.StatusInternalServerError)
		return
	}

	d, err := h.service.Get(ctx, session, userID, pkg.RequestNow(r))
	if err != nil {
		log.Errorf("dashboard of %s: %s", userID, err)
		http.Error(w, "failed to get dashboard", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, d, http.StatusOK)
}
