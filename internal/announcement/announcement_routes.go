package announcement

import (
	"go-portal/internal/middleware"
	"go-portal/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	announcements := r.Group("/announcements")
	announcements.Use(middleware.AuthMiddleware())
	{
		announcements.GET("", middleware.RBACAuthorize(rbacService, "announcement", "read"), handler.GetAll)
		announcements.POST("", middleware.RBACAuthorize(rbacService, "announcement", "create"), handler.Create)
		announcements.DELETE("/:id", middleware.RBACAuthorize(rbacService, "announcement", "delete"), handler.Delete)
	}
}
