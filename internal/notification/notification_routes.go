package notification

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
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", middleware.RBACAuthorize(rbacService, "notification", "read"), handler.GetAll)
		notifications.GET("/unread-count", middleware.RBACAuthorize(rbacService, "notification", "read"), handler.UnreadCount)
		notifications.PATCH("/:id/read", middleware.RBACAuthorize(rbacService, "notification", "write"), handler.MarkRead)
		notifications.PATCH("/read-all", middleware.RBACAuthorize(rbacService, "notification", "write"), handler.MarkAllRead)
		notifications.DELETE("/:id", middleware.RBACAuthorize(rbacService, "notification", "write"), handler.Delete)
	}
}
