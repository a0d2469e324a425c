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
	"strings"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/fiton/docs"
	"github.com/sbilibin2017/fiton/internal/facades"
	"github.com/sbilibin2017/fiton/internal/handlers"
	"github.com/sbilibin2017/fiton/internal/jwt"
	"github.com/sbilibin2017/fiton/internal/logger"
	"github.com/sbilibin2017/fiton/internal/metrics"
	"github.com/sbilibin2017/fiton/internal/middlewares"
	"github.com/sbilibin2017/fiton/internal/migrations"
	"github.com/sbilibin2017/fiton/internal/repositories"
	"github.com/sbilibin2017/fiton/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config is the full application configuration read by parseConfig.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	JWTSecretKey string
	JWTExpSecond int
	JWTIssuer    string
	JWTAudience  string

	ImagineArtAPIKey string
	ImagineArtAPIURL string

	GCPProjectID string
	GCPLocation  string
	VertexModel  string

	CORSAllowedOrigins []string

	KafkaBrokers []string
	KafkaTopic   string

	AWSRegion   string
	AWSS3Bucket string

	GenerationPerMinute int
	GenerationBurst     int
}

// @title fiton API
// @version 1.0.0
// @description Wardrobe, measurements and virtual try-on service
// @host localhost:8080
// @BasePath /api
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
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, JWT, vendor, Kafka and S3 configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	cfg := &config{}
	var err error

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return nil, err
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return nil, err
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return nil, err
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return nil, err
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return nil, err
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return nil, err
	}

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	cfg.JWTIssuer = getEnv("JWT_ISSUER", "")
	cfg.JWTAudience = getEnv("JWT_AUDIENCE", "")
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "3600"); err != nil {
		return nil, err
	}

	// Image vendors
	cfg.ImagineArtAPIKey = getEnv("IMAGINE_ART_API_KEY", "")
	cfg.ImagineArtAPIURL = getEnv("IMAGINE_ART_API_URL", "")
	cfg.GCPProjectID = getEnv("GOOGLE_CLOUD_PROJECT_ID", "")
	cfg.GCPLocation = getEnv("GOOGLE_CLOUD_LOCATION", "us-central1")
	cfg.VertexModel = getEnv("VERTEX_MODEL_ID", facades.DefaultVertexModel)

	cfg.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"))

	// Kafka config, publishing is disabled without brokers
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "fiton.generations")

	// S3 config, try-on images are not stored without a bucket
	cfg.AWSRegion = getEnv("AWS_REGION", "us-east-1")
	cfg.AWSS3Bucket = getEnv("AWS_S3_BUCKET", "")

	// Generation rate limit
	if cfg.GenerationPerMinute, err = getInt("GENERATION_RATE_PER_MINUTE", "10"); err != nil {
		return nil, err
	}
	if cfg.GenerationBurst, err = getInt("GENERATION_BURST", "3"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// splitList splits a comma separated value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// run initializes the logger, database, Redis, Kafka, S3 and image vendors, then the HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	if err := migrations.Up(db.DB); err != nil {
		return err
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
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for generation events
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaBrokers...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		log.Infof("Publishing generation events to %s", cfg.KafkaTopic)
	}

	// S3 store for try-on images
	var imageStore services.ImageStore
	if cfg.AWSS3Bucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return fmt.Errorf("unable to load AWS config: %w", err)
		}
		imageStore = repositories.NewS3ImageStore(s3.NewFromConfig(awsCfg), cfg.AWSS3Bucket)
		log.Infof("Storing try-on images in bucket %s", cfg.AWSS3Bucket)
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
		jwt.WithIssuer(cfg.JWTIssuer),
		jwt.WithAudience(cfg.JWTAudience),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	measurementRepo := repositories.NewMeasurementRepository(db)
	outfitRepo := repositories.NewOutfitRepository(db, middlewares.GetTxFromContext)
	wardrobeRepo := repositories.NewWardrobeRepository(db)
	tokenRepo := repositories.NewTokenRevocationRepository(rdb)

	// Initialize image vendors
	imagineArt := facades.NewImagineArtClient(cfg.ImagineArtAPIKey, cfg.ImagineArtAPIURL, &http.Client{Timeout: 2 * time.Minute})
	vertex := facades.NewVertexImageGenerator(cfg.GCPProjectID, cfg.GCPLocation, cfg.VertexModel, facades.NewPredictionClient())

	// Initialize services
	events := services.NewEventPublisher(kafkaWriter)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, tokenRepo)
	measurementService := services.NewMeasurementService(measurementRepo)
	outfitService := services.NewOutfitService(outfitRepo)
	wardrobeService := services.NewWardrobeService(wardrobeRepo, outfitRepo)
	avatarService := services.NewAvatarService(imagineArt, events)
	tryOnService := services.NewTryOnService(measurementRepo, wardrobeService, vertex, imageStore, events)
	dashboardService := services.NewDashboardService(userReadRepo, measurementRepo)

	generationLimiter := middlewares.NewRateLimiter(cfg.GenerationPerMinute, cfg.GenerationBurst)
	generationLimiter.StartCleanup(ctx, 10*time.Minute)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(metrics.InstrumentHandler)
	r.Use(middlewares.CORS(cfg.CORSAllowedOrigins))

	r.Get("/healthz", handlers.NewHealthzHandler(db))
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", handlers.NewRegisterHandler(authService))
		r.Post("/auth/login", handlers.NewLoginHandler(authService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens, tokenRepo))

			r.Post("/auth/logout", handlers.NewLogoutHandler(authService))

			r.Get("/avatar/measurements/retrieve", handlers.NewGetMeasurementsHandler(measurementService))
			r.Post("/avatar/measurements/save", handlers.NewSaveMeasurementsHandler(measurementService))
			r.Delete("/avatar/measurements/remove", handlers.NewDeleteMeasurementsHandler(measurementService))

			r.Route("/clothes", func(r chi.Router) {
				r.Get("/", handlers.NewListClothesHandler(outfitService))
				r.Post("/", handlers.NewCreateClothesHandler(outfitService))
				r.With(middlewares.TxMiddleware(db)).Post("/seed-sample-data", handlers.NewSeedSampleDataHandler(outfitService))
				r.Get("/{id}", handlers.NewGetClothesHandler(outfitService))
				r.Put("/{id}", handlers.NewUpdateClothesHandler(outfitService))
				r.Delete("/{id}", handlers.NewDeleteClothesHandler(outfitService))
			})

			r.Route("/wardrobe", func(r chi.Router) {
				r.Get("/", handlers.NewListWardrobesHandler(wardrobeService))
				r.Post("/", handlers.NewCreateWardrobeHandler(wardrobeService))
				r.Get("/{id}", handlers.NewGetWardrobeHandler(wardrobeService))
				r.Put("/{id}", handlers.NewUpdateWardrobeHandler(wardrobeService))
				r.Delete("/{id}", handlers.NewDeleteWardrobeHandler(wardrobeService))
			})

			r.Get("/dashboard/user-profile", handlers.NewUserProfileHandler(dashboardService))
			r.Get("/dashboard/stats", handlers.NewStatsHandler(dashboardService))
			r.Get("/dashboard/admin/users", handlers.NewAdminUsersHandler(dashboardService))

			// Image generation is rate limited per user
			r.Group(func(r chi.Router) {
				r.Use(generationLimiter.Handler)
				r.Post("/avatar/generate", handlers.NewAvatarHandler(avatarService))
				r.Post("/virtual-try-on/generate", handlers.NewTryOnHandler(tryOnService))
			})
		})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
