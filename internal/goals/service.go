package goals

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
)

const (
	cacheSize   = 5 * 1024 * 1024
	cacheExpire = 60 // seconds
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=goals

type goalsRepo interface {
	Get(ctx context.Context, userID string) (*DailyGoalSet, error)
	Save(ctx context.Context, set DailyGoalSet) error
}

// Service reads goal sets through a short lived local cache.
type Service struct {
	repo  goalsRepo
	cache *freecache.Cache
}

func NewService(repo goalsRepo) *Service {
	return &Service{
		repo:  repo,
		cache: freecache.NewCache(cacheSize),
	}
}

func cacheKey(userID string) []byte {
	return []byte("goals::" + userID)
}

func (s *Service) Get(ctx context.Context, userID string) (_ *DailyGoalSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if cached, err := s.cache.Get(cacheKey(userID)); err == nil {
		set := &DailyGoalSet{}
		if err := json.Unmarshal(cached, set); err == nil {
			return set, nil
		} else {
			log.Errorf("unmarshal cached goals of %s: %s", userID, err)
		}
	}

	set, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.cacheSet(set)
	return set, nil
}

func (s *Service) Save(ctx context.Context, set DailyGoalSet) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.Save(ctx, set); err != nil {
		s.cache.Del(cacheKey(set.UserID))
		return fmt.Errorf("save goals: %w", err)
	}
	s.cacheSet(&set)
	return nil
}

func (s *Service) cacheSet(set *DailyGoalSet) {
	setBytes, err := json.Marshal(set)
	if err != nil {
		log.Errorf("marshal goals of %s: %s", set.UserID, err)
		return
	}
	if err := s.cache.Set(cacheKey(set.UserID), setBytes, cacheExpire); err != nil {
		log.Errorf("cache goals of %s: %s", set.UserID, err)
	}
}
