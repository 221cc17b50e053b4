package user

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/config"
	"doctorsportal/models"
	"doctorsportal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func tokenTTL() time.Duration {
	hours := config.AppConfig.TokenTTLHours
	if hours <= 0 {
		hours = 4
	}
	return time.Duration(hours) * time.Hour
}

// GetAllUsers returns every stored user document.
func (s *DefaultUserService) GetAllUsers() ([]bson.M, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// IsAdmin reports whether the stored user holds the admin role. A missing
// user record yields false, never an error.
func (s *DefaultUserService) IsAdmin(email string) (bool, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return false, fmt.Errorf("failed to check admin role for %s: %w", email, err)
	}
	return usr.IsAdmin(), nil
}

// PromoteToAdmin sets role=admin on the user with the given email and drops
// any cached role for it.
func (s *DefaultUserService) PromoteToAdmin(email string) (*mongo.UpdateResult, error) {
	result, err := s.Repo.SetRole(email, models.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to promote %s: %w", email, err)
	}

	if cache := utils.GetRoleCacheClient(); cache != nil {
		cacheKey := utils.RoleCachePrefix + email
		if err := cache.Del(context.Background(), cacheKey).Err(); err != nil {
			utils.GetLogger().Warn("Failed to invalidate role cache",
				zap.String("email", email), zap.Error(err))
		}
	}
	return result, nil
}

// UpsertUser replaces or creates the user's profile document, then issues a
// fresh token bound to the email.
func (s *DefaultUserService) UpsertUser(email string, profile bson.M) (*UpsertResult, error) {
	if profile == nil {
		profile = bson.M{}
	}
	// Keep the document keyed by the path email even if the body disagrees.
	profile["email"] = email

	result, err := s.Repo.Upsert(email, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user %s: %w", email, err)
	}

	token, err := utils.GenerateToken(email, tokenTTL())
	if err != nil {
		return nil, fmt.Errorf("failed to issue token for %s: %w", email, err)
	}

	return &UpsertResult{Result: result, Token: token}, nil
}
