package progress

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitcoach/internal/auth"
	"github.com/2beens/fitcoach/internal/checkins/aggregation"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type progressService interface {
	Monthly(ctx context.Context, userID string, periodMonths int, now time.Time) (*Monthly, error)
	Series(ctx context.Context, userID string, metric Metric, year *int, loc *time.Location) ([]aggregation.Point, error)
}

type Handler struct {
	service progressService
	users   auth.UserGetter
}

func NewHandler(service progressService, users auth.UserGetter) *Handler {
	return &Handler{
		service: service,
		users:   users,
	}
}

// HandleMonthly serves ?months=6 (default) monthly weight buckets and their summary.
func (h *Handler) HandleMonthly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.monthly")
	defer span.End()

	userID, ok := h.target(w, r)
	if !ok {
		return
	}

	months := DefaultPeriodMonths
	if monthsStr := r.URL.Query().Get("months"); monthsStr != "" {
		var err error
		months, err = strconv.Atoi(monthsStr)
		if err != nil || months < 0 || months > 120 {
			http.Error(w, "error, invalid months", http.StatusBadRequest)
			return
		}
	}

	monthly, err := h.service.Monthly(ctx, userID, months, pkg.RequestNow(r))
	if err != nil {
		log.Errorf("monthly progress of %s: %s", userID, err)
		http.Error(w, "failed to get progress", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, monthly, http.StatusOK)
}

// HandleSeries serves ?metric=weight|score&year=2024.
func (h *Handler) HandleSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.series")
	defer span.End()

	userID, ok := h.target(w, r)
	if !ok {
		return
	}

	metric, err := ParseMetric(r.URL.Query().Get("metric"))
	if err != nil {
		http.Error(w, "error, metric must be weight or score", http.StatusBadRequest)
		return
	}

	var year *int
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil {
			http.Error(w, "error, year NaN", http.StatusBadRequest)
			return
		}
		year = &y
	}

	series, err := h.service.Series(ctx, userID, metric, year, pkg.RequestLocation(r))
	if err != nil {
		log.Errorf("%s series of %s: %s", metric, userID, err)
		http.Error(w, "failed to get progress", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, series, http.StatusOK)
}

func (h *Handler) target(w http.ResponseWriter, r *http.Request) (string, bool) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return "", false
	}

	userID, err := auth.ResolveTarget(r.Context(), h.users, session, r.URL.Query().Get("clientId"))
	if err != nil {
		if errors.Is(err, auth.ErrForbidden) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return "", false
		}
		log.Errorf("progress, resolve target: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return "", false
	}
	return userID, true
}
