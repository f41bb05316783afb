package middleware

import (
	"go-portal/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ActorFromGin rebuilds the authenticated principal from the values
// AuthMiddleware stored on the request context. ok is false when the route was
// registered without AuthMiddleware or the token carried a malformed user id.
func ActorFromGin(c *gin.Context) (domain.Actor, bool) {
	rawID, exists := c.Get("user_id")
	if !exists {
		return domain.Actor{}, false
	}

	idStr, ok := rawID.(string)
	if !ok {
		return domain.Actor{}, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return domain.Actor{}, false
	}

	return domain.Actor{
		ID:           id,
		Department:   c.GetString("department"),
		IsAdmin:      c.GetBool("is_admin"),
		IsTeamLeader: c.GetBool("is_team_leader"),
	}, true
}
