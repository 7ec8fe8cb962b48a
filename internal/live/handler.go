package live

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitcoach/internal/auth"
	"github.com/2beens/fitcoach/internal/store"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/pkg"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

type Handler struct {
	store          store.Store
	reminders      reminderStore
	metricsManager *metrics.Manager
	upgrader       websocket.Upgrader
	now            func() time.Time
}

func NewHandler(st store.Store, reminders reminderStore, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		store:          st,
		reminders:      reminders,
		metricsManager: metricsManager,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the token check already happened, any origin with a valid token may listen
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		now: time.Now,
	}
}

// HandleCheckins streams the caller's eligibility status: once when the connection opens,
// then on every check-in change, and at least every ping period so countdowns move on.
func (h *Handler) HandleCheckins(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Errorf("live: upgrade for %s: %s", session.UserID, err)
		return
	}
	defer conn.Close()

	if h.metricsManager != nil {
		h.metricsManager.GaugeLiveSubscriptions.Inc()
		defer h.metricsManager.GaugeLiveSubscriptions.Dec()
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	f := newFeed(session.UserID, pkg.RequestLocation(r), h.store, h.reminders, h.metricsManager)
	defer func() {
		if err := f.close(); err != nil {
			log.Errorf("live: release feed of %s: %s", session.UserID, err)
		}
	}()

	if err := f.start(ctx, h.now()); err != nil {
		log.Errorf("live: start feed of %s: %s", session.UserID, err)
		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "feed unavailable"),
			time.Now().Add(writeWait),
		)
		return
	}

	go readPump(conn, cancel)

	log.Debugf("live: %s connected", session.UserID)
	h.writePump(ctx, conn, f)
	log.Debugf("live: %s disconnected", session.UserID)
}

// readPump only processes control frames; any read error ends the session.
func readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Handler) writePump(ctx context.Context, conn *websocket.Conn, f *feed) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	push := func() bool {
		status, ok, err := f.status(ctx, h.now())
		if err != nil {
			log.Errorf("live: status of %s: %s", f.userID, err)
			return true
		}
		if !ok {
			return true
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(status); err != nil {
			log.Debugf("live: write to %s: %s", f.userID, err)
			return false
		}
		return true
	}

	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage, []byte{}, time.Now().Add(writeWait))
			return
		case <-f.updates:
			if !push() {
				return
			}
		case <-ticker.C:
			if err := f.rekey(ctx, h.now()); err != nil {
				log.Errorf("live: rekey feed of %s: %s", f.userID, err)
			}
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
			if !push() {
				return
			}
		}
	}
}
