package visibility

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitcoach/internal/auth"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=visibility_test

type settingsService interface {
	Get(ctx context.Context, session *auth.Session, clientID string) (*Settings, error)
	Save(ctx context.Context, session *auth.Session, settings Settings, now time.Time) error
}

type Handler struct {
	service settingsService
}

func NewHandler(service settingsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.visibility.get")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	clientID := mux.Vars(r)["clientId"]
	settings, err := h.service.Get(ctx, session, clientID)
	if err != nil {
		if errors.Is(err, auth.ErrForbidden) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		log.Errorf("get visibility of %s: %s", clientID, err)
		http.Error(w, "failed to get visibility settings", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.visibility.save")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var settings Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		log.Errorf("save visibility, unmarshal json: %s", err)
		http.Error(w, "save visibility settings failed", http.StatusBadRequest)
		return
	}
	settings.ClientID = mux.Vars(r)["clientId"]

	now := time.Now()
	if err := h.service.Save(ctx, session, settings, now); err != nil {
		if errors.Is(err, auth.ErrForbidden) {
			http.Error(w, "only the client's coach can change visibility", http.StatusForbidden)
			return
		}
		log.Errorf("save visibility of %s: %s", settings.ClientID, err)
		http.Error(w, "save visibility settings failed", http.StatusInternalServerError)
		return
	}
	settings.UpdatedAt = now
	pkg.WriteJSON(w, settings, http.StatusOK)
}
