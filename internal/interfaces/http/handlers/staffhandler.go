package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chambers/internal/domain/staff"
	"chambers/internal/shared/logger"
	"chambers/internal/shared/utils"
)

type StaffHandler struct {
	staffRepo staff.Repository
	logger    logger.Interface
}

func NewStaffHandler(staffRepo staff.Repository) *StaffHandler {
	return &StaffHandler{
		staffRepo: staffRepo,
		logger:    logger.NewLogger(),
	}
}

type DeviceTokenRequest struct {
	Token string `json:"token" validate:"required,max=512"`
}

// RegisterDeviceToken registers a push token for the authenticated staff
// member. Registration is idempotent.
func (h *StaffHandler) RegisterDeviceToken(c *gin.Context) {
	var req DeviceTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	firmID := c.GetUint("firm_id")
	userID := c.GetUint("user_id")

	if err := h.staffRepo.RegisterDeviceToken(c.Request.Context(), firmID, userID, req.Token); err != nil {
		h.logger.Errorw("failed to register device token",
			"firm_id", firmID,
			"user_id", userID,
			"error", err,
		)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "device token registered", nil)
}

// RemoveDeviceToken removes a push token for the authenticated staff member.
func (h *StaffHandler) RemoveDeviceToken(c *gin.Context) {
	var req DeviceTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	firmID := c.GetUint("firm_id")
	userID := c.GetUint("user_id")

	if err := h.staffRepo.RemoveDeviceToken(c.Request.Context(), firmID, userID, req.Token); err != nil {
		h.logger.Errorw("failed to remove device token",
			"firm_id", firmID,
			"user_id", userID,
			"error", err,
		)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "device token removed", nil)
}
