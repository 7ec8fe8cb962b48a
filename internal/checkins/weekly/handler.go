package weekly

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitcoach/internal/auth"
	"github.com/2beens/fitcoach/internal/checkins/aggregation"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=weekly_test

type checkinsService interface {
	List(ctx context.Context, userID string) ([]CheckinRecord, error)
	Submit(ctx context.Context, userID string, submission Submission, now time.Time) (*CheckinRecord, error)
	Edit(ctx context.Context, userID, id string, patch Patch, now time.Time) (*CheckinRecord, error)
	Delete(ctx context.Context, userID, id string) error
}

type DeleteCheckinResponse struct {
	DeletedID string `json:"deletedId"`
}

type Handler struct {
	service checkinsService
	users   auth.UserGetter
}

func NewHandler(service checkinsService, users auth.UserGetter) *Handler {
	return &Handler{
		service: service,
		users:   users,
	}
}

// HandleList lists the caller's check-ins, or a client's for their coach (?clientId=).
// With ?grouped=true the check-ins are grouped by calendar week.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.checkins.weekly.list")
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
		log.Errorf("list weekly check-ins, resolve target: %s", err)
		http.Error(w, "failed to list check-ins", http.StatusInternalServerError)
		return
	}

	records, err := h.service.List(ctx, userID)
	if err != nil {
		log.Errorf("list weekly check-ins of %s: %s", userID, err)
		http.Error(w, "failed to list check-ins", http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Get("grouped") == "true" {
		groups := aggregation.GroupByWeek(records, time.Sunday, pkg.RequestLocation(r))
		pkg.WriteJSON(w, groups, http.StatusOK)
		return
	}
	pkg.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.checkins.weekly.submit")
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

	var submission Submission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		log.Errorf("submit weekly check-in, unmarshal json: %s", err)
		http.Error(w, "submit check-in failed", http.StatusBadRequest)
		return
	}

	record, err := h.service.Submit(ctx, session.UserID, submission, pkg.RequestNow(r))
	if err != nil {
		if errors.Is(err, ErrAlreadySubmittedThisWeek) {
			http.Error(w, "check-in already submitted this week", http.StatusConflict)
			return
		}
		log.Errorf("submit weekly check-in of %s: %s", session.UserID, err)
		http.Error(w, "submit check-in failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("weekly check-in %s submitted by %s, score %.1f", record.ID, session.UserID, record.FinalScore)
	pkg.WriteJSON(w, record, http.StatusCreated)
}

func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.checkins.weekly.edit")
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
		log.Errorf("edit weekly check-in, unmarshal json: %s", err)
		http.Error(w, "edit check-in failed", http.StatusBadRequest)
		return
	}
	if patch.Ratings != nil && !patch.Ratings.Complete() {
		http.Error(w, "error, ratings must be sent as a full set", http.StatusBadRequest)
		return
	}
	if patch.Ratings != nil && !patch.Ratings.Valid() {
		log.Warnf("weekly check-in %s edited with ratings out of range: %+v", id, *patch.Ratings)
	}

	record, err := h.service.Edit(ctx, session.UserID, id, patch, time.Now())
	if err != nil {
		writeServiceError(w, "edit", id, err)
		return
	}
	pkg.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.checkins.weekly.delete")
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
	default:
		log.Errorf("%s weekly check-in %s: %s", op, id, err)
		http.Error(w, op+" check-in failed", http.StatusInternalServerError)
	}
}
