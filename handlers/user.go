package handlers

import (
	"net/http"

	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// UserHandler serves the user endpoints.
type UserHandler struct {
	Svc user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Svc: svc}
}

// GetAllUsersHandler handles GET /user.
func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.Svc.GetAllUsers()
	if err != nil {
		utils.GetLogger().Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdminHandler handles GET /admin/:email.
func (h *UserHandler) CheckAdminHandler(c *gin.Context) {
	email := c.Param("email")
	isAdmin, err := h.Svc.IsAdmin(email)
	if err != nil {
		utils.GetLogger().Error("Failed to check admin role",
			zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

// PromoteAdminHandler handles PUT /user/admin/:email. The store result is
// returned as-is; zero matched documents means the target user does not
// exist.
func (h *UserHandler) PromoteAdminHandler(c *gin.Context) {
	email := c.Param("email")
	result, err := h.Svc.PromoteToAdmin(email)
	if err != nil {
		utils.GetLogger().Error("Failed to promote user",
			zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpsertUserHandler handles PUT /user/:email. The body is stored as the
// user's profile and a fresh token for the email is returned alongside the
// store result.
func (h *UserHandler) UpsertUserHandler(c *gin.Context) {
	email := c.Param("email")

	var profile bson.M
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	result, err := h.Svc.UpsertUser(email, profile)
	if err != nil {
		utils.GetLogger().Error("Failed to upsert user",
			zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
