package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/config"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/database"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/handler"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/job"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/repository"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/seed"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/store"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/usecase"
	"github.com/vasapolrittideah/streamhub-api/shared/auth"
	"github.com/vasapolrittideah/streamhub-api/shared/cache"
	"github.com/vasapolrittideah/streamhub-api/shared/logger"
	"github.com/vasapolrittideah/streamhub-api/shared/mailer"
	"github.com/vasapolrittideah/streamhub-api/shared/middleware"
	"github.com/vasapolrittideah/streamhub-api/shared/provider"
	"github.com/vasapolrittideah/streamhub-api/shared/ratelimit"
	"github.com/vasapolrittideah/streamhub-api/shared/utilities"
	"github.com/vasapolrittideah/streamhub-api/shared/validation"
)

const (
	serviceName    = "api-service"
	startupTimeout = 15 * time.Second
	catalogTTL     = 5 * time.Minute
)

func main() {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg, err := config.NewAPIServiceConfig()
	if err != nil {
		bootLogger := logger.New(serviceName, "development", "info")
		bootLogger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	log := logger.New(serviceName, cfg.Env, cfg.LogLevel)

	if cfg.UsesDefaultSecret() && cfg.IsProduction() {
		log.Warn().Msg("JWT_SECRET is not set, session tokens are signed with the development secret")
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), startupTimeout)
	defer cancelStartup()

	pool, err := database.Connect(startupCtx, cfg.Mongo.URI, cfg.DatabaseName())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	log.Info().Str("database", cfg.DatabaseName()).Msg("connected to database")

	s := store.NewMongoStore(pool.Database())

	userRepo := repository.NewUserRepository(startupCtx, log, s)
	seriesRepo := repository.NewSeriesRepository(startupCtx, log, s)
	episodeRepo := repository.NewEpisodeRepository(startupCtx, log, s)
	genreRepo := repository.NewGenreRepository(startupCtx, log, s)
	productRepo := repository.NewProductRepository(startupCtx, log, s)
	categoryRepo := repository.NewCategoryRepository(s)
	todoRepo := repository.NewTodoRepository(s)
	historyRepo := repository.NewHistoryRepository(s)
	favoriteRepo := repository.NewFavoriteRepository(s)

	validator, err := validation.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create validator")
	}

	catalogCache, redisClient := newCatalogCache(startupCtx, cfg, log)

	images := newImageStore(cfg, log)
	videos := newVideoHost(cfg, log)
	oauth := newOAuthProvider(cfg, log)
	mail := mailer.NewMailer(log)

	jwtAuth := auth.NewJWTAuthenticator(cfg.Token.Audience, cfg.Token.Issuer)
	limiter := ratelimit.NewIPRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	proxies, err := utilities.NewTrustedProxies(cfg.RateLimit.TrustedProxies)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse trusted proxies")
	}

	passwordResetUsecase := usecase.NewPasswordResetUsecase(userRepo, validator, mail, cfg, log)

	usecases := handler.Usecases{
		Auth:          usecase.NewAuthUsecase(userRepo, validator, jwtAuth, oauth, cfg, log),
		Account:       usecase.NewAccountUsecase(userRepo, validator, images, log),
		PasswordReset: passwordResetUsecase,
		Catalog:       usecase.NewCatalogUsecase(seriesRepo, episodeRepo, genreRepo, catalogCache, validator, log),
		Shop:          usecase.NewShopUsecase(productRepo, categoryRepo, validator),
		Todo:          usecase.NewTodoUsecase(todoRepo),
		Library:       usecase.NewLibraryUsecase(historyRepo, favoriteRepo, validator),
		Media:         usecase.NewMediaUsecase(images, videos, validator),
	}

	var seeder handler.Seeder
	if cfg.SeedEnabled {
		seeder = seed.NewSeeder(s, log)
		log.Warn().Msg("seed operation is enabled")
	}

	dispatcher := handler.NewDispatcher(usecases, seeder, limiter)
	router := handler.NewRouter(log, dispatcher, proxies.RealIP, middleware.NewJWTMiddleware(jwtAuth, cfg.Token.Secret))

	scheduler, err := job.NewScheduler(cfg.CleanupSchedule, passwordResetUsecase, limiter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create cleanup scheduler")
	}
	scheduler.Start()

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to serve HTTP")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to shut down HTTP server")
	}

	scheduler.Stop(ctx)

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close redis client")
		}
	}

	if err := pool.Close(ctx); err != nil {
		log.Error().Err(err).Msg("failed to disconnect from database")
	}

	log.Info().Msg("server stopped")
}

// newCatalogCache prefers Redis and falls back to an in-process cache when
// Redis is not configured or unreachable.
func newCatalogCache(ctx context.Context, cfg *config.APIServiceConfig, log *zerolog.Logger) (cache.Cache, *redis.Client) {
	if cfg.Redis.Addr == "" {
		return cache.NewMemoryCache(catalogTTL, 2*catalogTTL), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unreachable, using in-memory cache")
		_ = client.Close()
		return cache.NewMemoryCache(catalogTTL, 2*catalogTTL), nil
	}

	return cache.NewRedisCache(client), client
}

func newImageStore(cfg *config.APIServiceConfig, log *zerolog.Logger) usecase.ImageStore {
	c := cfg.Cloudinary
	if c.URL == "" && (c.CloudName == "" || c.APIKey == "" || c.APISecret == "") {
		log.Warn().Msg("cloudinary is not configured, image uploads are disabled")
		return nil
	}

	images, err := provider.NewCloudinary(c.URL, c.CloudName, c.APIKey, c.APISecret)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create cloudinary client")
	}

	return images
}

func newVideoHost(cfg *config.APIServiceConfig, log *zerolog.Logger) usecase.VideoHost {
	if cfg.Bunny.LibraryID == "" || cfg.Bunny.APIKey == "" {
		log.Warn().Msg("bunny stream is not configured, video operations are disabled")
		return nil
	}

	return provider.NewBunnyStream(cfg.Bunny.LibraryID, cfg.Bunny.APIKey, cfg.Bunny.BaseURL)
}

func newOAuthProvider(cfg *config.APIServiceConfig, log *zerolog.Logger) usecase.OAuthProvider {
	if cfg.Google.ClientID == "" || cfg.Google.ClientSecret == "" {
		log.Warn().Msg("google oauth is not configured, google sign-in is disabled")
		return nil
	}

	return provider.NewGoogleOAuthProvider(cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.RedirectURL)
}
