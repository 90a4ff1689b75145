package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"brand-dna/internal/config"
	"brand-dna/internal/db"
	"brand-dna/internal/domain"
	"brand-dna/internal/email"
	apihttp "brand-dna/internal/http"
	"brand-dna/internal/llm"
	"brand-dna/internal/repository"
	"brand-dna/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	profileRepo := repository.NewPgWorkshopProfileRepository(pool)
	snapshotRepo := repository.NewPgSnapshotRepository(pool)
	terminologyRepo := repository.NewPgTerminologyRepository(pool)

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMEmbedModel, zap.NewStdLog(logger))

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	var (
		enrichLimiter service.EnrichRateLimiter
		enrichCache   service.EnrichmentCache
		tokenStore    service.RefreshTokenStore
		redisClient   *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			enrichLimiter = service.NewRedisEnrichRateLimiter(redisClient, time.Minute, cfg.EnrichRateLimitPerMinute)
			enrichCache = service.NewRedisEnrichmentCache(redisClient)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
		}
		cancel()
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	catalog := domain.DefaultArchetypes()
	synonyms := domain.DefaultSynonyms()

	var (
		writingAnalyzer     service.WritingAnalyzer
		personalityAnalyzer service.PersonalityAnalyzer
		missionSuggester    service.MissionSuggester
	)
	if cfg.LLMAPIKey != "" {
		writingAnalyzer = service.NewLLMWritingAnalyzer(llmClient, domain.ArchetypeIDs(catalog), enrichCache, logger)
		personalityAnalyzer = service.NewLLMPersonalityAnalyzer(llmClient, logger)
		missionSuggester = service.NewLLMMissionSuggester(llmClient)
	} else {
		logger.Warn("llm api key not configured, running rule-based only")
	}

	classifierSvc := service.NewClassifierService(catalog, synonyms, writingAnalyzer, personalityAnalyzer, logger)
	uvpSvc := service.NewUVPService(catalog, service.NewCachedTerminologyProvider(terminologyRepo, logger), logger)
	missionSvc := service.NewMissionService(missionSuggester, logger)
	userSvc := service.NewUserService(logger, userRepo)

	userHandler := apihttp.NewUserHandler(logger, userSvc, jwtSvc)
	workshopHandler := apihttp.NewWorkshopHandler(
		logger,
		catalog,
		classifierSvc,
		uvpSvc,
		missionSvc,
		llmClient,
		profileRepo,
		snapshotRepo,
		emailSender,
		enrichLimiter,
	)
	router := apihttp.NewRouter(logger, jwtSvc, userHandler, workshopHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
