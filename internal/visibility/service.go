package visibility

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitcoach/internal/auth"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
)

const (
	cacheSize   = 5 * 1024 * 1024
	cacheExpire = 60 // seconds
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=visibility

type settingsRepo interface {
	Get(ctx context.Context, clientID string) (*Settings, error)
	Save(ctx context.Context, settings Settings) error
}

type Service struct {
	repo  settingsRepo
	users auth.UserGetter
	cache *freecache.Cache
}

func NewService(repo settingsRepo, users auth.UserGetter) *Service {
	return &Service{
		repo:  repo,
		users: users,
		cache: freecache.NewCache(cacheSize),
	}
}

func cacheKey(clientID string) []byte {
	return []byte("visibility::" + clientID)
}

// Get returns the settings of clientID, for the client itself or its coach.
func (s *Service) Get(ctx context.Context, session *auth.Session, clientID string) (_ *Settings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.visibility.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := auth.ResolveTarget(ctx, s.users, session, clientID); err != nil {
		return nil, err
	}
	return s.Settings(ctx, clientID)
}

// Settings reads the settings without access checks.
func (s *Service) Settings(ctx context.Context, clientID string) (*Settings, error) {
	if cached, err := s.cache.Get(cacheKey(clientID)); err == nil {
		settings := &Settings{}
		if err := json.Unmarshal(cached, settings); err == nil {
			return settings, nil
		} else {
			log.Errorf("unmarshal cached visibility of %s: %s", clientID, err)
		}
	}

	settings, err := s.repo.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}
	s.cacheSet(settings)
	return settings, nil
}

// Save stores the settings. Only the coach of the client may do that.
func (s *Service) Save(ctx context.Context, session *auth.Session, settings Settings, now time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.visibility.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !session.IsCoach() || settings.ClientID == session.UserID {
		return auth.ErrForbidden
	}
	if _, err := auth.ResolveTarget(ctx, s.users, session, settings.ClientID); err != nil {
		return err
	}

	settings.UpdatedAt = now
	if err := s.repo.Save(ctx, settings); err != nil {
		s.cache.Del(cacheKey(settings.ClientID))
		return fmt.Errorf("save visibility: %w", err)
	}
	s.cacheSet(&settings)
	return nil
}

func (s *Service) cacheSet(settings *Settings) {
	settingsBytes, err := json.Marshal(settings)
	if err != nil {
		log.Errorf("marshal visibility of %s: %s", settings.ClientID, err)
		return
	}
	if err := s.cache.Set(cacheKey(settings.ClientID), settingsBytes, cacheExpire); err != nil {
		log.Errorf("cache visibility of %s: %s", settings.ClientID, err)
	}
}
