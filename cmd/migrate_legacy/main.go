package main

import (
	"context"
	"flag"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitcoach/internal"
	"github.com/2beens/fitcoach/internal/config"
	"github.com/2beens/fitcoach/internal/db"
	"github.com/2beens/fitcoach/internal/logging"
	"github.com/2beens/fitcoach/internal/store"
	"github.com/2beens/fitcoach/internal/store/pgstore"
)

// migrate_legacy moves documents out of the legacy collections written by old app
// versions into the canonical ones. Safe to run more than once.
func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	dryRun := flag.Bool("dry-run", false, "only count legacy documents")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}
	if cfg.StoreBackend != config.StorePostgres {
		log.Fatalf("nothing to migrate on store backend %s", cfg.StoreBackend)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogLevel: cfg.LogLevel,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     os.Getenv("FITCOACH_POSTGRES_USER"),
		DBPassword: os.Getenv("FITCOACH_POSTGRES_PASS"),
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	// notify through redis, so open live feeds pick the moved documents up
	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: os.Getenv("FITCOACH_REDIS_PASS"),
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Errorf("close redis client: %s", err)
		}
	}()

	docStore := pgstore.New(dbPool, store.NewRedisNotifier(rdb))

	for canonical, legacyCollections := range internal.LegacyCollections {
		for _, legacy := range legacyCollections {
			if *dryRun {
				docs, err := docStore.Query(ctx, store.Query{Collection: legacy})
				if err != nil {
					log.Fatalf("count %s: %s", legacy, err)
				}
				log.Infof("[dry run] %s -> %s: %d documents", legacy, canonical, len(docs))
				continue
			}

			res, err := store.MigrateLegacy(ctx, docStore, canonical, legacy)
			if err != nil {
				log.Fatalf("migrate %s -> %s: %s", legacy, canonical, err)
			}
			log.Infof("%s -> %s: moved %d, skipped %d", legacy, canonical, res.Moved, res.Skipped)
		}
	}
}
