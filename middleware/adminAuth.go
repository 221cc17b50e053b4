package middleware

import (
	"context"
	"net/http"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AdminAuthMiddleware gates a route behind the admin role. It must run after
// JWTAuthMiddleware, which provides the caller's email. Roles are cached in
// Redis with a short TTL; a cache miss or an unavailable cache falls back to
// the user store. An absent user record simply has no role.
func AdminAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := AuthenticatedEmail(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden - not admin"})
			return
		}

		role, err := lookupRole(users, email)
		if err != nil {
			utils.GetLogger().Error("Admin role lookup failed",
				zap.String("email", email), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to verify admin role"})
			return
		}
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden - not admin"})
			return
		}

		c.Next()
	}
}

func lookupRole(users userRepo.UserRepository, email string) (string, error) {
	ctx := context.Background()
	cacheKey := utils.RoleCachePrefix + email

	cache := utils.GetRoleCacheClient()
	if cache != nil {
		role, err := cache.Get(ctx, cacheKey).Result()
		if err == nil {
			return role, nil
		}
		if err != redis.Nil {
			utils.GetLogger().Warn("Role cache read failed, falling back to store",
				zap.String("email", email), zap.Error(err))
		}
	}

	usr, err := users.GetByEmail(email)
	if err != nil {
		return "", err
	}
	var role string
	if usr != nil {
		role = usr.Role
	}

	if cache != nil {
		_ = cache.Set(ctx, cacheKey, role, utils.RoleCacheTTL).Err()
	}
	return role, nil
}
