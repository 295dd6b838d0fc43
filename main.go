package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/noirfolio/noirfolio/backend/go-services/handlers"
	"github.com/noirfolio/noirfolio/backend/go-services/internal/config"
	"github.com/noirfolio/noirfolio/backend/go-services/internal/database"
	"github.com/noirfolio/noirfolio/backend/go-services/internal/mailer"
	"github.com/noirfolio/noirfolio/backend/go-services/internal/portfolio/repository"
	"github.com/noirfolio/noirfolio/backend/go-services/internal/portfolio/service"
	"github.com/noirfolio/noirfolio/backend/go-services/internal/submission"
	"github.com/noirfolio/noirfolio/backend/go-services/pkg/logger"
	"github.com/noirfolio/noirfolio/backend/go-services/pkg/metrics"
	"github.com/noirfolio/noirfolio/backend/go-services/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: store_file=%s mongo=%v redis=%v mail=%v",
		cfg.Store.File, cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Mail.Sender != "")

	r := gin.New()

	// Lightweight CORS middleware: the site frontend is served from a
	// different origin in dev and the API is public read anyway.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so the rate-limiter can use it when configured
	var importedRedis *redis.Client
	if cfg.Redis.Host != "" {
		importedRedis = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := importedRedis.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			importedRedis = nil
		} else {
			logger.Infof("Connected to Redis for rate limiting: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional rate limiter over the public endpoints (per client IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && importedRedis != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(importedRedis, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Select the store backend: MongoDB when configured, otherwise the JSON file.
	var repo repository.Repository
	if cfg.MongoDB.URI != "" {
		// Retry/backoff when connecting to MongoDB to tolerate startup races
		const maxAttempts = 5
		backoff := time.Second
		var client *mongo.Client
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			client, errConn = database.ConnectMongo(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB after %d attempts, falling back to %s: %v", maxAttempts, cfg.Store.File, errConn)
			repo = repository.NewFileRepo(cfg.Store.File)
		} else {
			defer func() { _ = client.Disconnect(context.Background()) }()
			col := client.Database(cfg.MongoDB.Database).Collection("store")
			repo = repository.NewMongoRepo(col)
			logger.Infof("Using MongoDB-backed store (database=%s)", cfg.MongoDB.Database)
		}
	} else {
		repo = repository.NewFileRepo(cfg.Store.File)
	}

	store := service.New(repo)

	// Notification dispatcher. It fails closed per call when the sender or
	// recipient is unresolved, so an unconfigured mailer only costs the
	// notifications, never the submissions.
	dispatcher := mailer.NewSMTP(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.Sender)
	if cfg.Mail.Sender == "" {
		logger.Warnf("MAIL_SENDER not set; submissions will be stored but the owner will not be notified")
	}
	subs := submission.NewService(store, dispatcher, cfg.Mail.Recipient)

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint — return 200 only when critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		// storage readiness: the backing medium must be readable
		// (a store that was never written to is fine, it seeds on first use)
		if _, err := repo.Load(c.Request.Context()); err != nil && err != repository.ErrNotFound {
			deps["storage"] = false
			ready = false
		} else {
			deps["storage"] = true
		}

		// mail readiness is informational: submissions survive a dead mailer
		deps["mail"] = cfg.Mail.Sender != "" && cfg.Mail.Recipient != ""

		// Redis readiness when used for the rate limiter
		if cfg.Redis.Host != "" && cfg.RateLimit.UseRedis {
			deps["redis"] = importedRedis != nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": time.Since(startTime).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
	})

	handlers.RegisterPortfolioRoutes(r, store, subs)
	handlers.RegisterSwagger(r)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting portfolio service on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
