package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/api/option"

	"github.com/2beens/fitcoach/internal/auth"
	"github.com/2beens/fitcoach/internal/blob"
	"github.com/2beens/fitcoach/internal/checkins"
	"github.com/2beens/fitcoach/internal/checkins/daily"
	"github.com/2beens/fitcoach/internal/checkins/reminder"
	"github.com/2beens/fitcoach/internal/checkins/weekly"
	"github.com/2beens/fitcoach/internal/config"
	"github.com/2beens/fitcoach/internal/dashboard"
	"github.com/2beens/fitcoach/internal/db"
	"github.com/2beens/fitcoach/internal/goals"
	"github.com/2beens/fitcoach/internal/live"
	"github.com/2beens/fitcoach/internal/middleware"
	"github.com/2beens/fitcoach/internal/progress"
	"github.com/2beens/fitcoach/internal/store"
	"github.com/2beens/fitcoach/internal/store/memstore"
	"github.com/2beens/fitcoach/internal/store/pgstore"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/internal/visibility"
	"github.com/2beens/fitcoach/pkg"
)

// LegacyCollections maps canonical collections to the differently cased ones
// older app versions still write to.
var LegacyCollections = map[string][]string{
	weekly.Collection: {"Checkins"},
}

type usersRepo interface {
	Add(ctx context.Context, user auth.User) (*auth.User, error)
	Get(ctx context.Context, id string) (*auth.User, error)
	GetByUsername(ctx context.Context, username string) (*auth.User, error)
}

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool // nil when running on the in-memory store
	docStore    store.Store
	blobStore   *blob.Store
	redisClient *redis.Client

	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	CoachPasswordHash       string
	RedisPassword           string
	PostgresUser            string
	PostgresPassword        string
	GCSCredentialsFile      string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitcoach-backend", rdb)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:       cfg,
		versionInfo:  params.VersionInfo,
		redisClient:  rdb,
		otelShutdown: otelShutdown,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),
	}

	var users usersRepo
	var baseStore store.Store
	switch cfg.StoreBackend {
	case config.StorePostgres:
		s.dbPool, err = db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBUser:         params.PostgresUser,
			DBPassword:     params.PostgresPassword,
			TracingEnabled: params.HoneycombTracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		if err := s.dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}

		pg := pgstore.New(s.dbPool, store.NewRedisNotifier(rdb))
		if err := pg.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("document store schema: %w", err)
		}
		pgUsers := auth.NewUsersRepo(s.dbPool)
		if err := pgUsers.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("users schema: %w", err)
		}
		baseStore, users = pg, pgUsers

		pgxpoolCollector := pgxpoolprometheus.NewCollector(
			s.dbPool,
			map[string]string{"db_name": cfg.PostgresDBName},
		)
		s.promRegistry = metrics.SetupPrometheus(pgxpoolCollector)
	case config.StoreMemory:
		log.Warnln("running on the in-memory document store, nothing survives a restart")
		mem := memstore.New()
		baseStore, users = mem, auth.NewDocUsersRepo(mem)
		s.promRegistry = metrics.SetupPrometheus()
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.StoreBackend)
	}

	s.metricsManager = metrics.NewManager("fitcoach", "main", s.promRegistry)
	s.metricsManager.GaugeLifeSignal.Set(0)
	s.docStore = store.NewReconciler(baseStore, LegacyCollections)

	s.authService = auth.NewAuthService(users, auth.DefaultTTL, rdb)
	if cfg.CoachUsername != "" && params.CoachPasswordHash != "" {
		coach, err := s.authService.EnsureCoach(ctx, cfg.CoachUsername, params.CoachPasswordHash)
		if err != nil {
			return nil, fmt.Errorf("ensure coach account: %w", err)
		}
		log.Debugf("coach account: %s [%s]", coach.Username, coach.ID)
	} else {
		log.Warnln("coach credentials not set, no coach account bootstrapped")
	}

	go func() {
		ticker := time.NewTicker(8 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.authService.ScanAndClean(ctx)
			}
		}
	}()

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	backend, err := newBlobBackend(ctx, cfg, tracedHttpClient, params.GCSCredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("blob backend: %w", err)
	}
	s.blobStore = blob.NewStore(backend, cfg.BlobPrefix, cfg.BlobBaseURL, s.metricsManager)

	return s, nil
}

func newBlobBackend(
	ctx context.Context,
	cfg *config.Config,
	httpClient *http.Client,
	gcsCredentialsFile string,
) (blob.Backend, error) {
	switch cfg.BlobBackend {
	case config.BlobDisk:
		return blob.NewDiskBackend(cfg.BlobDiskRootPath)
	case config.BlobS3:
		client, err := blob.NewS3Client(ctx, cfg.BlobRegion, httpClient)
		if err != nil {
			return nil, err
		}
		return blob.NewS3Backend(client, cfg.BlobBucket), nil
	case config.BlobGCS:
		var opts []option.ClientOption
		if gcsCredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(gcsCredentialsFile))
		}
		return blob.NewGCSBackend(ctx, cfg.BlobBucket, opts...)
	default:
		return nil, fmt.Errorf("unknown blob backend: %s", cfg.BlobBackend)
	}
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitcoach-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	rateLimited := func(routeName string, allowedPerMin int, h http.HandlerFunc) http.Handler {
		return middleware.RateLimit(reqRateLimiter, routeName, allowedPerMin, s.metricsManager)(h)
	}

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, "fitcoach")
	}).Methods("GET").Name("root")
	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET").Name("version")
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, "ok")
	}).Methods("GET").Name("healthz")

	authHandler := auth.NewHandler(s.authService)
	r.Handle("/a/login",
		rateLimited("login", s.config.LoginRateLimitAllowedPerMin, authHandler.HandleLogin),
	).Methods("POST", "OPTIONS").Name("login")
	r.HandleFunc("/a/logout", authHandler.HandleLogout).Methods("GET", "OPTIONS").Name("logout")
	r.HandleFunc("/a/me", authHandler.HandleMe).Methods("GET", "OPTIONS").Name("me")
	r.HandleFunc("/a/clients", authHandler.HandleAddClient).Methods("POST", "OPTIONS").Name("add-client")

	weeklyService := weekly.NewService(weekly.NewRepo(s.docStore), s.metricsManager)
	dailyService := daily.NewService(daily.NewRepo(s.docStore), s.metricsManager)
	goalsService := goals.NewService(goals.NewRepo(s.docStore))
	visibilityService := visibility.NewService(visibility.NewRepo(s.docStore), s.authService)
	progressService := progress.NewService(weeklyService)
	reminders := reminder.NewStore(s.redisClient)
	statusService := checkins.NewStatusService(weeklyService, dailyService, reminders)

	weeklyHandler := weekly.NewHandler(weeklyService, s.authService)
	r.HandleFunc("/checkins/weekly", weeklyHandler.HandleList).Methods("GET", "OPTIONS").Name("list-weekly")
	r.Handle("/checkins/weekly",
		rateLimited("submit-weekly", s.config.SubmitRateLimitAllowedPerMin, weeklyHandler.HandleSubmit),
	).Methods("POST", "OPTIONS").Name("submit-weekly")
	r.HandleFunc("/checkins/weekly/{id}", weeklyHandler.HandleEdit).Methods("PUT", "OPTIONS").Name("edit-weekly")
	r.HandleFunc("/checkins/weekly/{id}", weeklyHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-weekly")

	dailyHandler := daily.NewHandler(dailyService, goalsService, s.authService)
	r.HandleFunc("/checkins/daily", dailyHandler.HandleList).Methods("GET", "OPTIONS").Name("list-daily")
	r.Handle("/checkins/daily",
		rateLimited("submit-daily", s.config.SubmitRateLimitAllowedPerMin, dailyHandler.HandleSubmit),
	).Methods("POST", "OPTIONS").Name("submit-daily")
	r.HandleFunc("/checkins/daily/{id}", dailyHandler.HandleEdit).Methods("PUT", "OPTIONS").Name("edit-daily")
	r.HandleFunc("/checkins/daily/{id}", dailyHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-daily")

	statusHandler := checkins.NewHandler(statusService)
	r.HandleFunc("/checkins/eligibility", statusHandler.HandleEligibility).Methods("GET", "OPTIONS").Name("eligibility")
	r.HandleFunc("/checkins/reminder/dismiss", statusHandler.HandleDismissReminder).Methods("POST", "OPTIONS").Name("dismiss-reminder")

	goalsHandler := goals.NewHandler(goalsService, s.authService)
	r.HandleFunc("/goals", goalsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-goals")
	r.HandleFunc("/goals", goalsHandler.HandleSave).Methods("PUT", "OPTIONS").Name("save-goals")

	visibilityHandler := visibility.NewHandler(visibilityService)
	r.HandleFunc("/visibility/{clientId}", visibilityHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-visibility")
	r.HandleFunc("/visibility/{clientId}", visibilityHandler.HandleSave).Methods("PUT", "OPTIONS").Name("save-visibility")

	progressHandler := progress.NewHandler(progressService, s.authService)
	r.HandleFunc("/progress/monthly", progressHandler.HandleMonthly).Methods("GET", "OPTIONS").Name("progress-monthly")
	r.HandleFunc("/progress/series", progressHandler.HandleSeries).Methods("GET", "OPTIONS").Name("progress-series")

	dashboardHandler := dashboard.NewHandler(
		dashboard.NewService(visibilityService, goalsService, statusService, weeklyService, dailyService, progressService),
		s.authService,
	)
	r.HandleFunc("/dashboard", dashboardHandler.HandleGet).Methods("GET", "OPTIONS").Name("dashboard")

	blobHandler := blob.NewHandler(s.blobStore)
	r.Handle("/blobs",
		rateLimited("upload-blob", s.config.UploadRateLimitAllowedPerMin, blobHandler.HandleUpload),
	).Methods("POST", "OPTIONS").Name("upload-blob")
	r.HandleFunc("/blobs/{key:.+}", blobHandler.HandleDownload).Methods("GET", "OPTIONS").Name("download-blob")

	liveHandler := live.NewHandler(s.docStore, reminders, s.metricsManager)
	r.HandleFunc("/live/checkins", liveHandler.HandleCheckins).Methods("GET").Name("live-checkins")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest(middleware.MaxDrainBytes))

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler: router,
		Addr:    ipAndPort,
		// no WriteTimeout, live check-in sockets stay open
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Minute,
		ConnState:         s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown http server: %s", err)
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown metrics http server: %s", err)
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
