package handlers

import (
	"net/http"

	"doctorsportal/services/doctor"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DoctorHandler serves the doctor endpoints.
type DoctorHandler struct {
	Svc doctor.DoctorService
}

func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Svc: svc}
}

// AddDoctorHandler handles POST /doctor.
func (h *DoctorHandler) AddDoctorHandler(c *gin.Context) {
	var doc bson.M
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	result, err := h.Svc.AddDoctor(doc)
	if err != nil {
		utils.GetLogger().Error("Failed to add doctor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
