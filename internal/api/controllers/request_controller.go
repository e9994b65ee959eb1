package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"utsav/internal/services"
	"utsav/pkg/utils"
)

type RequestController struct {
	requestService services.RequestServiceInterface
}

func NewRequestController(requestService services.RequestServiceInterface) *RequestController {
	return &RequestController{
		requestService: requestService,
	}
}

// GetRequestById godoc
// @Summary Look up a planning request by reference number
// @Tags Request
// @Produce json
// @Param requestId path string true "Request ID"
// @Success 200 {object} response_models.PlanningRequestResponse
// @Failure 404 {object} utils.APIResponse
// @Router /requests/{requestId} [get]
func (rc *RequestController) GetRequestById(c *gin.Context) {
	requestId := c.Param("requestId")
	if requestId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Request ID is required")
		return
	}

	request, err := rc.requestService.GetRequestByID(c.Request.Context(), requestId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, request, "Request fetched successfully")
}
