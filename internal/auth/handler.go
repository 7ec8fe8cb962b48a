package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"
)

// TokenHeader carries the session token of logged-in requests.
const TokenHeader = "X-FITCOACH-TOKEN"

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type authService interface {
	Login(ctx context.Context, credentials Credentials, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
	AddClient(ctx context.Context, coachID string, credentials Credentials) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
}

type Handler struct {
	authService authService
}

func NewHandler(authService authService) *Handler {
	return &Handler{
		authService: authService,
	}
}

type LoginResponse struct {
	Token string `json:"token"`
}

func readCredentials(r *http.Request) (Credentials, error) {
	var credentials Credentials
	if r.Header.Get("Content-Type") == pkg.ContentType.JSON {
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			return credentials, err
		}
		return credentials, nil
	}

	if err := r.ParseForm(); err != nil {
		return credentials, err
	}
	return Credentials{
		Username: r.Form.Get("username"),
		Password: r.Form.Get("password"),
	}, nil
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.login")
	defer span.End()

	credentials, err := readCredentials(r)
	if err != nil {
		log.Errorf("login, read credentials: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}

	if credentials.Username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}
	if credentials.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	token, err := h.authService.Login(ctx, credentials, time.Now())
	if err != nil {
		if errors.Is(err, ErrWrongPassword) {
			span.SetStatus(codes.Error, "wrong-credentials")
			http.Error(w, "error, wrong credentials", http.StatusBadRequest)
			return
		}
		log.Errorf("login failed: %s", err)
		span.RecordError(err)
		http.Error(w, "login error", http.StatusInternalServerError)
		return
	}

	log.Trace("new login success")
	pkg.WriteJSON(w, LoginResponse{Token: token}, http.StatusOK)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.logout")
	defer span.End()

	authToken := r.Header.Get(TokenHeader)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := h.authService.Logout(ctx, authToken)
	if err != nil {
		log.Tracef("[failed logout] => %s: %s", r.URL.Path, err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (h *Handler) HandleAddClient(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.addClient")
	defer span.End()

	session, ok := SessionFromContext(ctx)
	if !ok || !session.IsCoach() {
		http.Error(w, "only coaches can add clients", http.StatusForbidden)
		return
	}

	credentials, err := readCredentials(r)
	if err != nil || credentials.Username == "" || credentials.Password == "" {
		http.Error(w, "username and password required", http.StatusBadRequest)
		return
	}

	client, err := h.authService.AddClient(ctx, session.UserID, credentials)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			http.Error(w, "username taken", http.StatusConflict)
			return
		}
		log.Errorf("add client for coach %s: %s", session.UserID, err)
		http.Error(w, "failed to add client", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.String("client.id", client.ID))
	pkg.WriteJSON(w, client, http.StatusCreated)
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	user, err := h.authService.GetUser(r.Context(), session.UserID)
	if err != nil {
		log.Errorf("get user %s: %s", session.UserID, err)
		http.Error(w, "failed to get user", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, user, http.StatusOK)
}
