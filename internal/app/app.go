package app

import (
	"context"
	"os"

	"go-portal/internal/auth"
	"go-portal/internal/employee"
	"go-portal/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	// 2. Break-glass admin: dibuat dari env, tidak pernah hardcoded
	employeeRepo := employee.NewRepository(gormDB)
	if err := auth.SeedBreakGlassAdmin(
		context.Background(),
		employeeRepo,
		os.Getenv("BREAK_GLASS_ADMIN_EMAIL"),
		os.Getenv("BREAK_GLASS_ADMIN_PASSWORD"),
	); err != nil {
		return err
	}
	logger.Info("break-glass admin seeded")

	// 3. Register Modules & Routes
	return registerModules(router, sqlDB, gormDB, redisClient)
}
