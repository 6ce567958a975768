package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sh-lee/mygallery/internal/handlers"
	internaljwt "github.com/sh-lee/mygallery/internal/jwt"
	"github.com/sh-lee/mygallery/internal/logger"
	"github.com/sh-lee/mygallery/internal/middlewares"
	"github.com/sh-lee/mygallery/internal/repositories"
	"github.com/sh-lee/mygallery/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds all application settings loaded from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PgHost         string
	PgPort         int
	PgUser         string
	PgPassword     string
	PgDB           string
	PgMaxOpenConns int
	PgMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	JWTSecretKey     string
	JWTAccessExpSec  int
	JWTRefreshExpSec int
	RefreshRotate    bool

	KafkaAddr  string
	KafkaTopic string

	UploadDir string
}

// @title mygallery API
// @version 1.0.0
// @description Personal gallery backend: users, board posts with image attachments, JWT auth
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	getEnvInt := func(key string, defaultValue int) (int, error) {
		return strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	}

	cfg := &config{
		AppHost:  getEnv("APP_HOST", "localhost"),
		AppPort:  getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),

		PgHost:     getEnv("POSTGRES_HOST", "localhost"),
		PgUser:     getEnv("POSTGRES_USER", "user"),
		PgPassword: getEnv("POSTGRES_PASSWORD", "password"),
		PgDB:       getEnv("POSTGRES_DB", "mygallery"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		JWTSecretKey:  getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
		RefreshRotate: getEnv("AUTH_REFRESH_ROTATE", "false") == "true",

		KafkaAddr:  getEnv("KAFKA_ADDR", ""),
		KafkaTopic: getEnv("KAFKA_TOPIC", "mygallery.board-events"),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
	}

	var err error
	if cfg.PgPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.PgMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.PgMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}
	if cfg.RedisPort, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RedisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.RedisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}
	if cfg.JWTAccessExpSec, err = getEnvInt("JWT_ACCESS_EXP_SECOND", 1800); err != nil {
		return nil, err
	}
	if cfg.JWTRefreshExpSec, err = getEnvInt("JWT_REFRESH_EXP_SECOND", 604800); err != nil {
		return nil, err
	}

	return cfg, nil
}

// run initializes the logger, database, Redis, the optional Kafka writer,
// and the HTTP server. It sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PgUser, cfg.PgPassword, cfg.PgHost, cfg.PgPort, cfg.PgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.PgHost, cfg.PgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error: ", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PgMaxOpenConns)
	db.SetMaxIdleConns(cfg.PgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed: ", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error: ", err)
	}
	defer rdb.Close()

	// Optional Kafka writer for board events
	var kafkaWriter services.KafkaWriter
	if cfg.KafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaAddr),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka writer configured for topic %s", cfg.KafkaTopic)
	}

	accessExp := time.Duration(cfg.JWTAccessExpSec) * time.Second
	refreshExp := time.Duration(cfg.JWTRefreshExpSec) * time.Second

	// Initialize token codec
	tokenCodec := internaljwt.New(
		internaljwt.WithSecretKey(cfg.JWTSecretKey),
		internaljwt.WithAccessExpiration(accessExp),
		internaljwt.WithRefreshExpiration(refreshExp),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	boardReadRepo := repositories.NewBoardReadRepository(db)
	boardWriteRepo := repositories.NewBoardWriteRepository(db)
	imageReadRepo := repositories.NewImageReadRepository(db)
	imageWriteRepo := repositories.NewImageWriteRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(rdb, refreshExp)

	// Initialize services
	authService := services.NewAuthService(
		userReadRepo, userWriteRepo, tokenCodec, refreshTokenRepo,
		services.WithRotation(cfg.RefreshRotate),
	)
	boardService := services.NewBoardService(
		boardReadRepo, boardWriteRepo, imageReadRepo, imageWriteRepo,
		userReadRepo, kafkaWriter, cfg.UploadDir,
	)

	// Setup router
	authGate := middlewares.AuthMiddleware(tokenCodec)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/users", func(r chi.Router) {
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService, refreshExp))
		r.Post("/refresh", handlers.NewRefreshHandler(authService, refreshExp))
		r.With(authGate).Post("/logout", handlers.NewLogoutHandler(authService))
	})

	r.Route("/boards", func(r chi.Router) {
		r.Get("/", handlers.NewBoardListHandler(boardService))
		r.Get("/{id}", handlers.NewBoardGetHandler(boardService))
		r.Get("/user/{userId}", handlers.NewBoardListByUserHandler(boardService))

		// Mutations run behind the gate and inside one transaction.
		r.Group(func(r chi.Router) {
			r.Use(authGate)
			r.Use(middlewares.TxMiddleware(db))
			r.Post("/", handlers.NewBoardCreateHandler(boardService))
			r.Put("/{id}", handlers.NewBoardUpdateHandler(boardService))
			r.Delete("/{id}", handlers.NewBoardDeleteHandler(boardService))
			r.Post("/{id}/images", handlers.NewImageAttachHandler(boardService))
			r.Delete("/{id}/images/{imageId}", handlers.NewImageRemoveHandler(boardService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
