package main

import (
	"context"
	"database/sql"
	"os"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KimTaekGwan/FinancialFlowApp/internal/command"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/config"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/events"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/handler"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/middleware"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/query"
	redisclient "github.com/KimTaekGwan/FinancialFlowApp/internal/redis"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/repository"
	"github.com/KimTaekGwan/FinancialFlowApp/pkg/logger"
)

func main() {
	cfg := config.Load()
	if err := logger.Init(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Storage engine: in-memory maps by default, PostgreSQL when configured.
	var store repository.Store
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("failed to open database", zap.Error(err))
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Fatal("failed to ping database", zap.Error(err))
		}
		store = repository.NewPostgresStore(db)
		logger.Info("using postgres store")
	} else {
		mem := repository.NewMemoryStore()
		if cfg.SeedDemoData {
			if err := repository.SeedDemoData(ctx, mem); err != nil {
				logger.Fatal("failed to seed demo data", zap.Error(err))
			}
			logger.Info("demo data seeded")
		}
		store = mem
		logger.Info("using in-memory store")
	}

	// Redis is optional: without it the view cache degrades to store reads
	// and events are dropped.
	var redisConn *goredis.Client
	var publisher *events.Publisher
	if cfg.Redis.Addr != "" {
		rc, err := redisclient.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer rc.Close()
		redisConn = rc.Client
		publisher = events.NewPublisher(redisConn)

		hostname, _ := os.Hostname()
		auditSub := events.NewSubscriber(redisConn, events.SubscriberConfig{
			Group:    "audit",
			Consumer: hostname,
			Stream:   events.TransactionEventsStream,
			Handler:  auditLog,
		})
		go func() {
			if err := auditSub.Start(ctx); err != nil && err != context.Canceled {
				logger.Error("audit subscriber stopped", zap.Error(err))
			}
		}()
	}

	views := repository.NewUserViewRepository(store, redisConn)

	userCommands := command.NewUserCommandService(store, views, publisher)
	txCommands := command.NewTransactionCommandService(store, store, views, publisher)
	contactCommands := command.NewContactCommandService(store, store)
	convCommands := command.NewConversationCommandService(store, store, publisher)

	userQueries := query.NewUserQueryService(views)
	txQueries := query.NewTransactionQueryService(store)
	contactQueries := query.NewContactQueryService(store)
	convQueries := query.NewConversationQueryService(store)
	authQueries := query.NewAuthQueryService(store, cfg.JWTSecret)

	userHandler := handler.NewUserHandler(userCommands, userQueries)
	txHandler := handler.NewTransactionHandler(txCommands, txQueries)
	contactHandler := handler.NewContactHandler(contactCommands, contactQueries)
	convHandler := handler.NewConversationHandler(convCommands, convQueries)
	authHandler := handler.NewAuthHandler(authQueries)

	router := gin.Default()
	router.Use(middleware.LoggingMiddleware())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Registration and login stay open in every deployment.
	open := router.Group("/api")
	open.POST("/users", userHandler.CreateUser)
	open.POST("/auth/login", authHandler.Login)
	open.POST("/auth/refresh", authHandler.RefreshToken)

	// The demo runs unauthenticated; setting JWT_SECRET closes the rest of
	// the API behind bearer tokens.
	api := router.Group("/api")
	if cfg.JWTSecret != "" {
		api.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	}
	api.GET("/user/:id", userHandler.GetUser)
	api.GET("/transactions/:userId", txHandler.ListTransactions)
	api.GET("/transaction/:id", txHandler.GetTransaction)
	api.POST("/transactions", txHandler.CreateTransaction)
	api.GET("/contacts/:userId", contactHandler.ListContacts)
	api.GET("/contacts/:userId/frequent", contactHandler.ListFrequentContacts)
	api.POST("/contacts", contactHandler.CreateContact)
	api.GET("/conversations/:userId", convHandler.ListConversations)
	api.POST("/conversations", convHandler.CreateConversation)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

// auditLog is the transaction-stream consumer: one structured audit line
// per event, acknowledged through the consumer group so restarts replay
// anything unprocessed.
func auditLog(ctx context.Context, event events.Event) error {
	logger.Info("audit",
		zap.String("type", event.Type),
		zap.Time("at", event.Timestamp),
		zap.Any("data", event.Data),
	)
	return nil
}
