package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"caters-backend/internal/auth"
	"caters-backend/internal/backup"
	"caters-backend/internal/cache"
	"caters-backend/internal/config"
	"caters-backend/internal/database"
	"caters-backend/internal/db"
	"caters-backend/internal/handlers"
	apphttp "caters-backend/internal/http"
	"caters-backend/internal/middleware"
	"caters-backend/internal/repositories"
	"caters-backend/internal/services"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	migrator := database.NewMigrator(pool)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		log.Fatalf("[Main] Migration failed: %v", err)
	}

	if err := cache.Init(cfg); err != nil {
		log.Printf("[Main] Redis unavailable, token revocation disabled: %v", err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	customerRepo := repositories.NewCustomerRepository(pool)
	orderRepo := repositories.NewOrderRepository(pool)
	eventRepo := repositories.NewEventRepository(pool)
	menuRepo := repositories.NewMenuRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)
	expenseRepo := repositories.NewExpenseRepository(pool)
	activityLogRepo := repositories.NewActivityLogRepository(pool)
	rollupRepo := repositories.NewRollupRepository(pool)

	// Backup storage is optional; the endpoint reports an error when unset
	uploader, err := backup.NewUploader(context.Background(), cfg)
	if err != nil {
		log.Fatalf("[Main] Backup storage init failed: %v", err)
	}

	// Services
	jwtManager := auth.NewJWTManager(cfg)
	rollupService := services.NewRollupService(rollupRepo)
	authService := services.NewAuthService(userRepo, activityLogRepo, jwtManager)
	customerService := services.NewCustomerService(customerRepo)
	orderService := services.NewOrderService(orderRepo, customerRepo, eventRepo, menuRepo, paymentRepo)
	eventService := services.NewEventService(eventRepo, orderRepo, rollupService)
	menuService := services.NewMenuService(menuRepo, eventRepo, rollupService)
	paymentService := services.NewPaymentService(paymentRepo, orderRepo, rollupService)
	expenseService := services.NewExpenseService(expenseRepo)
	reportService := services.NewReportService(orderService, cfg)
	backupService := services.NewBackupService(orderService, customerRepo, expenseRepo, uploader)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	orderHandler := handlers.NewOrderHandler(orderService, reportService)
	eventHandler := handlers.NewEventHandler(eventService)
	menuHandler := handlers.NewMenuHandler(menuService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	healthHandler := handlers.NewHealthHandler(pool)
	systemHandler := handlers.NewSystemHandler()
	backupHandler := handlers.NewBackupHandler(backupService)

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)

	router := apphttp.NewRouter(
		authHandler,
		customerHandler,
		orderHandler,
		eventHandler,
		menuHandler,
		paymentHandler,
		expenseHandler,
		healthHandler,
		systemHandler,
		backupHandler,
		authMiddleware,
	)

	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(corsMiddleware(middleware.MetricsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("[Main] Server listening on %s", addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("[Main] Server failed: %v", err)
	}
}
