package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/allyglazer/UBSSwissBankDigital/internal/command"
	"github.com/allyglazer/UBSSwissBankDigital/internal/config"
	"github.com/allyglazer/UBSSwissBankDigital/internal/db"
	"github.com/allyglazer/UBSSwissBankDigital/internal/events"
	"github.com/allyglazer/UBSSwissBankDigital/internal/handler"
	"github.com/allyglazer/UBSSwissBankDigital/internal/middleware"
	"github.com/allyglazer/UBSSwissBankDigital/internal/query"
	redisClient "github.com/allyglazer/UBSSwissBankDigital/internal/redis"
	"github.com/allyglazer/UBSSwissBankDigital/internal/repository"
)

func main() {
	cfg := config.Load()
	middleware.MustInitJWTSecret()

	// Database connection (write store)
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Redis connection (read model store + event streaming)
	redis, err := redisClient.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	// --- CQRS wiring ---
	publisher := events.NewPublisher(redis.Client)

	userWrite := repository.NewUserWriteRepository(database)
	userRead := repository.NewUserReadRepository(database, redis.Client)
	accountWrite := repository.NewAccountWriteRepository(database)
	accountRead := repository.NewAccountReadRepository(database, redis.Client)
	transactionWrite := repository.NewTransactionWriteRepository(database)
	transactionRead := repository.NewTransactionReadRepository(database)
	notificationRepo := repository.NewNotificationRepository(database)
	supportRepo := repository.NewSupportRepository(database)

	accountCmd := command.NewAccountCommandService(accountWrite, accountRead, publisher)
	userCmd := command.NewUserCommandService(userWrite, userRead, accountCmd, publisher, cfg.AdminUsername)
	transactionCmd := command.NewTransactionCommandService(transactionWrite, publisher)
	notificationCmd := command.NewNotificationCommandService(notificationRepo, accountRead)
	supportCmd := command.NewSupportCommandService(supportRepo)

	authQry := query.NewAuthQueryService(userWrite, cfg.TokenTTL)
	userQry := query.NewUserQueryService(userRead)
	accountQry := query.NewAccountQueryService(accountRead)
	transactionQry := query.NewTransactionQueryService(transactionRead)
	messageQry := query.NewMessageQueryService(notificationRepo, supportRepo)

	authHandler := handler.NewAuthHandler(userCmd, authQry)
	userHandler := handler.NewUserHandler(userCmd, userQry)
	accountHandler := handler.NewAccountHandler(accountCmd, accountQry)
	transactionHandler := handler.NewTransactionHandler(transactionCmd, transactionQry)
	adminHandler := handler.NewAdminHandler(userCmd, userQry, transactionQry)
	notificationHandler := handler.NewNotificationHandler(notificationCmd, messageQry)
	supportHandler := handler.NewSupportHandler(supportCmd, messageQry)

	// Setup router
	router := gin.Default()
	router.Use(middleware.LoggingMiddleware())

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
		}

		users := api.Group("/users", middleware.AuthMiddleware())
		{
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
		}

		accounts := api.Group("/accounts", middleware.AuthMiddleware())
		{
			accounts.GET("/user/:userId", accountHandler.ListAccounts)
			accounts.PUT("/:id", accountHandler.UpdateAccount)
		}

		transactions := api.Group("/transactions", middleware.AuthMiddleware())
		{
			transactions.GET("/account/:accountId", transactionHandler.ListByAccount)
			transactions.POST("", transactionHandler.CreateTransaction)
			transactions.PUT("/:id", middleware.AdminMiddleware(), transactionHandler.SetStatus)
		}

		admin := api.Group("/admin", middleware.AuthMiddleware(), middleware.AdminMiddleware())
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.GET("/users/pending", adminHandler.ListPendingUsers)
			admin.POST("/users/:id/approve", adminHandler.ApproveUser)
			admin.POST("/users/:id/ban", adminHandler.BanUser)
			admin.GET("/transactions/pending", adminHandler.ListPendingTransactions)
		}

		notifications := api.Group("/notifications", middleware.AuthMiddleware())
		{
			notifications.GET("/user/:userId", notificationHandler.ListByUser)
			notifications.POST("", notificationHandler.Create)
			notifications.PUT("/:id/read", notificationHandler.MarkRead)
		}

		support := api.Group("/support", middleware.AuthMiddleware())
		{
			support.GET("/user/:userId", supportHandler.ListByUser)
			support.POST("", supportHandler.Create)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Moderation decisions fan out as user notifications via the stream.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		subscriber := events.NewSubscriber(redis.Client, events.SubscriberConfig{
			Group:    "banking-notifications",
			Consumer: "notification-consumer-1",
			Stream:   events.TransactionEventsStream,
			Handler:  notificationCmd.HandleTransactionEvent,
		})
		if err := subscriber.Start(ctx); err != nil {
			log.Printf("Subscriber stopped: %v", err)
		}
	}()

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutting down...")
		cancel()
	}()

	log.Printf("Banking service starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
