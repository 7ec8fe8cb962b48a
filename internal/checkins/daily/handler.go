package daily

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitcoach/internal/auth"
	"github.com/2beens/fitcoach/internal/goals"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=daily_test

type checkinsService interface {
	List(ctx context.Context, userID string, from, to time.Time) ([]DailyCheckinRecord, error)
	Submit(ctx context.Context, userID string, draft Draft, now time.Time) (*DailyCheckinRecord, error)
	Edit(ctx context.Context, userID, id string, patch Patch, now time.Time) (*DailyCheckinRecord, error)
	Delete(ctx context.Context, userID, id string) error
}

type goalsProvider interface {
	Get(ctx context.Context, userID string) (*goals.DailyGoalSet, error)
}

type DeleteCheckinResponse struct {
	DeletedID string `json:"deletedId"`
}

type Handler struct {
	service checkinsService
	goals   goalsProvider
	users   auth.UserGetter
}

func NewHandler(service checkinsService, goals goalsProvider, users auth.UserGetter) *Handler {
	return &Handler{
		service: service,
		goals:   goals,
		users:   users,
	}
}

// HandleList lists daily check-ins, all of them or of one day (?date=2024-03-06)
// in the caller's timezone. Coaches pass ?clientId=.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.checkins.daily.list")
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
		log.Errorf("list daily check-ins, resolve target: %s", err)
		http.Error(w, "failed to list check-ins", http.StatusInternalServerError)
		return
	}

	var from, to time.Time
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		from, err = time.ParseInLocation(time.DateOnly, dateStr, pkg.RequestLocation(r))
		if err != nil {
			http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		to = from.AddDate(0, 0, 1)
	}

	records, err := h.service.List(ctx, userID, from, to)
	if err != nil {
		log.Errorf("list daily check-ins of %s: %s", userID, err)
		http.Error(w, "failed to list check-ins", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, records, http.StatusOK)
}

// HandleSubmit submits a draft. A draft without goals gets the caller's current daily goals,
// none of them completed.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.checkins.daily.submit")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var draft Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Errorf("submit daily check-in, unmarshal json: %s", err)
		http.Error(w, "submit check-in failed", http.StatusBadRequest)
		return
	}

	if len(draft.Goals) == 0 {
		set, err := h.goals.Get(ctx, session.UserID)
		switch {
		case err == nil:
			draft.Goals = EntriesFromGoals(set.Goals())
		case errors.Is(err, goals.ErrGoalsNotSet):
		default:
			log.Errorf("submit daily check-in, get goals of %s: %s", session.UserID, err)
			http.Error(w, "submit check-in failed", http.StatusInternalServerError)
			return
		}
	}

	record, err := h.service.Submit(ctx, session.UserID, draft, pkg.RequestNow(r))
	if err != nil {
		switch {
		case errors.Is(err, ErrNoPhotos), errors.Is(err, ErrNoGoals):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrAlreadySubmittedToday):
			http.Error(w, "check-in already submitted today", http.StatusConflict)
		default:
			log.Errorf("submit daily check-in of %s: %s", session.UserID, err)
			http.Error(w, "submit check-in failed", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, record, http.StatusCreated)
}

func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.checkins.daily.edit")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	var patch Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Errorf("edit daily check-in, unmarshal json: %s", err)
		http.Error(w, "edit check-in failed", http.StatusBadRequest)
		return
	}

	record, err := h.service.Edit(ctx, session.UserID, id, patch, time.Now())
	if err != nil {
		writeServiceError(w, "edit", id, err)
		return
	}
	pkg.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.checkins.daily.delete")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(ctx, session.UserID, id); err != nil {
		writeServiceError(w, "delete", id, err)
		return
	}
	pkg.WriteJSON(w, DeleteCheckinResponse{DeletedID: id}, http.StatusOK)
}

func writeServiceError(w http.ResponseWriter, op, id string, err error) {
	switch {
	case errors.Is(err, ErrCheckinNotFound):
		http.Error(w, "check-in not found", http.StatusNotFound)
	case errors.Is(err, ErrNotOwner):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrNoPhotos):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s daily check-in %s: %s", op, id, err)
		http.Error(w, op+" check-in failed", http.StatusInternalServerError)
	}
}
