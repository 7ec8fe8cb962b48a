package store

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type MigrationResult struct {
	Moved   int
	Skipped int
}

// MigrateLegacy moves every document of the legacy collection into the canonical one and
// deletes the legacy copy. Documents already present in the canonical collection
// are kept as they are and their legacy copy is dropped.
func MigrateLegacy(ctx context.Context, s Store, canonical, legacy string) (_ MigrationResult, err error) {
	var res MigrationResult

	docs, err := s.Query(ctx, Query{Collection: legacy})
	if err != nil {
		return res, fmt.Errorf("query legacy %s: %w", legacy, err)
	}

	for _, d := range docs {
		_, err := s.Get(ctx, canonical, d.ID)
		switch {
		case err == nil:
			log.Debugf("migrate %s -> %s: %s already present", legacy, canonical, d.ID)
			res.Skipped++
		case errors.Is(err, ErrNotFound):
			if _, err := s.Write(ctx, canonical, d.ID, d.Data, false); err != nil {
				return res, fmt.Errorf("write %s/%s: %w", canonical, d.ID, err)
			}
			res.Moved++
		default:
			return res, fmt.Errorf("get %s/%s: %w", canonical, d.ID, err)
		}

		if err := s.Delete(ctx, legacy, d.ID); err != nil && !errors.Is(err, ErrNotFound) {
			return res, fmt.Errorf("delete %s/%s: %w", legacy, d.ID, err)
		}
	}

	return res, nil
}
