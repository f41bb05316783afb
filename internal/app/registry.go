package app

import (
	"database/sql"

	"go-portal/internal/announcement"
	"go-portal/internal/auth"
	"go-portal/internal/employee"
	"go-portal/internal/leave"
	"go-portal/internal/messaging/kafka"
	"go-portal/internal/middleware"
	"go-portal/internal/notification"
	"go-portal/internal/rbac"
	"go-portal/internal/rbac/infra"
	"go-portal/internal/report"
	"go-portal/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	announcementRepo := announcement.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	reportRepo := report.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer)
	if err != nil {
		return err
	}

	// --- Services ---
	fanout := notification.NewFanout(db, notificationRepo, outboxRepo)
	announcementService := announcement.NewService(db, announcementRepo, employeeRepo, fanout)
	authService := auth.NewService(employeeRepo)
	employeeService := employee.NewService(db, employeeRepo, rdb)
	leaveService := leave.NewService(db, leaveRepo, employeeRepo, fanout)
	notificationService := notification.NewService(notificationRepo)
	reportService := report.NewService(db, reportRepo, counterRepo, fanout)

	// --- Handlers ---
	announcementHandler := announcement.NewHandler(announcementService)
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandler(leaveService)
	notificationHandler := notification.NewHandler(notificationService)
	reportHandler := report.NewHandler(reportService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RequestID())
	{
		announcement.RegisterRoutes(api, announcementHandler, rbacService)
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService, rdb)
		notification.RegisterRoutes(api, notificationHandler, rbacService)
		report.RegisterRoutes(api, reportHandler, rbacService, rdb)
	}

	return nil
}
