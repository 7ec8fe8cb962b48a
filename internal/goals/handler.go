package goals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitcoach/internal/auth"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=goals_test

type goalsService interface {
	Get(ctx context.Context, userID string) (*DailyGoalSet, error)
	Save(ctx context.Context, set DailyGoalSet) error
}

type GoalsResponse struct {
	DailyGoalSet
	Goals []Goal `json:"goals"`
}

type Handler struct {
	service goalsService
	users   auth.UserGetter
}

func NewHandler(service goalsService, users auth.UserGetter) *Handler {
	return &Handler{
		service: service,
		users:   users,
	}
}

// HandleGet returns the caller's goal set, or a client's for their coach (?clientId=).
// An unset goal set is returned empty.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.get")
	defer span.End()

	userID, ok := h.target(w, r)
	if !ok {
		return
	}

	set, err := h.service.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrGoalsNotSet) {
			log.Errorf("get goals of %s: %s", userID, err)
			http.Error(w, "failed to get goals", http.StatusInternalServerError)
			return
		}
		set = &DailyGoalSet{UserID: userID}
	}

	pkg.WriteJSON(w, GoalsResponse{DailyGoalSet: *set, Goals: set.Goals()}, http.StatusOK)
}

func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.save")
	defer span.End()

	userID, ok := h.target(w, r)
	if !ok {
		return
	}

	var set DailyGoalSet
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		log.Errorf("save goals, unmarshal json: %s", err)
		http.Error(w, "save goals failed", http.StatusBadRequest)
		return
	}
	set.UserID = userID
	set.UpdatedAt = time.Now()

	if err := h.service.Save(ctx, set); err != nil {
		log.Errorf("save goals of %s: %s", userID, err)
		http.Error(w, "save goals failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, GoalsResponse{DailyGoalSet: set, Goals: set.Goals()}, http.StatusOK)
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
		log.Errorf("goals, resolve target: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return "", false
	}
	return userID, true
}
