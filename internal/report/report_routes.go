package report

import (
	"go-portal/internal/middleware"
	"go-portal/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	reports.Use(middleware.ContextLogger(zap.L()))
	{
		reports.POST("",
			middleware.RBACAuthorize(rbacService, "report", "create"),
			middleware.Idempotency(rdb),
			handler.Submit,
		)
		reports.GET("", middleware.RBACAuthorize(rbacService, "report", "read"), handler.GetAll)
		reports.GET("/:id", middleware.RBACAuthorize(rbacService, "report", "read"), handler.GetById)
		reports.PATCH("/:id/approve", middleware.RBACAuthorize(rbacService, "report", "approve"), handler.Approve)
		reports.PATCH("/:id/reject", middleware.RBACAuthorize(rbacService, "report", "approve"), handler.Reject)
	}
}
