package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"utsav/internal/models/request_models"
	"utsav/internal/services"
	"utsav/pkg/utils"
)

type ConversationController struct {
	conversationService services.ConversationServiceInterface
}

func NewConversationController(conversationService services.ConversationServiceInterface) *ConversationController {
	return &ConversationController{
		conversationService: conversationService,
	}
}

// StartConversation godoc
// @Summary Start a planning conversation
// @Description Create a new guided planning session; identity is optional
// @Tags Conversation
// @Produce json
// @Success 200 {object} response_models.ConversationSnapshot
// @Router /conversations [post]
func (cc *ConversationController) StartConversation(c *gin.Context) {
	snapshot, err := cc.conversationService.Start(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, snapshot, "Conversation started")
}

// GetConversation godoc
// @Summary Get the current conversation snapshot
// @Tags Conversation
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.ConversationSnapshot
// @Router /conversations/{sessionId} [get]
func (cc *ConversationController) GetConversation(c *gin.Context) {
	snapshot, err := cc.conversationService.Snapshot(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, snapshot, "Conversation fetched")
}

// SelectEventType godoc
// @Summary Choose the event type
// @Tags Conversation
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.SelectEventTypeRequest true "Event type"
// @Success 200 {object} response_models.ConversationSnapshot
// @Router /conversations/{sessionId}/event-type [post]
func (cc *ConversationController) SelectEventType(c *gin.Context) {
	var req request_models.SelectEventTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "event_type_id is required")
		return
	}

	snapshot, err := cc.conversationService.SelectEventType(c.Request.Context(), c.Param("sessionId"), req.EventTypeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, snapshot, "Event type selected")
}

// ToggleChecklistItem godoc
// @Summary Toggle a vendor category on the checklist
// @Tags Conversation
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.ToggleChecklistRequest true "Category"
// @Success 200 {object} response_models.ConversationSnapshot
// @Router /conversations/{sessionId}/checklist/toggle [post]
func (cc *ConversationController) ToggleChecklistItem(c *gin.Context) {
	var req request_models.ToggleChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "category is required")
		return
	}

	snapshot, err := cc.conversationService.ToggleChecklistItem(c.Request.Context(), c.Param("sessionId"), req.Category)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, snapshot, "Checklist updated")
}

// ConfirmChecklist godoc
// @Summary Confirm the vendor checklist
// @Tags Conversation
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.ConversationSnapshot
// @Router /conversations/{sessionId}/checklist/confirm [post]
func (cc *ConversationController) ConfirmChecklist(c *gin.Context) {
	snapshot, err := cc.conversationService.ConfirmChecklist(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, snapshot, "Checklist confirmed")
}

// ConfirmLocation godoc
// @Summary Provide the event location
// @Tags Conversation
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.ConfirmLocationRequest true "Location"
// @Success 200 {object} response_models.ConversationSnapshot
// @Router /conversations/{sessionId}/location [post]
func (cc *ConversationController) ConfirmLocation(c *gin.Context) {
	var req request_models.ConfirmLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "location is required")
		return
	}

	snapshot, err := cc.conversationService.ConfirmLocation(c.Request.Context(), c.Param("sessionId"), req.Location)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, snapshot, "Location saved")
}

// ConfirmBudget godoc
// @Summary Provide the total budget
// @Tags Conversation
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.ConfirmBudgetRequest true "Budget"
// @Success 200 {object} response_models.ConversationSnapshot
// @Router /conversations/{sessionId}/budget [post]
func (cc *ConversationController) ConfirmBudget(c *gin.Context) {
	var req request_models.ConfirmBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "budget is required")
		return
	}

	snapshot, err := cc.conversationService.ConfirmBudget(c.Request.Context(), c.Param("sessionId"), req.Budget)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, snapshot, "Budget allocated")
}

// SetSplitMode godoc
// @Summary Switch between proportional and equal budget split
// @Tags Conversation
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.SetSplitModeRequest true "Split mode"
// @Success 200 {object} response_models.ConversationSnapshot
// @Router /conversations/{sessionId}/split-mode [post]
func (cc *ConversationController) SetSplitMode(c *gin.Context) {
	var req request_models.SetSplitModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "mode must be proportional or equal")
		return
	}

	snapshot, err := cc.conversationService.SetSplitMode(c.Request.Context(), c.Param("sessionId"), req.Mode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, snapshot, "Split mode updated")
}

// GetRecommendations godoc
// @Summary Fetch vendor recommendations for the selected categories
// @Tags Conversation
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.RecommendationResponse
// @Router /conversations/{sessionId}/recommendations [get]
func (cc *ConversationController) GetRecommendations(c *gin.Context) {
	result, err := cc.conversationService.Recommendations(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Recommendations fetched")
}

// ToggleVendor godoc
// @Summary Mark or unmark a vendor as interested
// @Tags Conversation
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.ToggleVendorRequest true "Vendor ID"
// @Success 200 {object} response_models.ConversationSnapshot
// @Router /conversations/{sessionId}/vendors/toggle [post]
func (cc *ConversationController) ToggleVendor(c *gin.Context) {
	var req request_models.ToggleVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "vendor_id is required")
		return
	}

	snapshot, err := cc.conversationService.ToggleVendor(c.Request.Context(), c.Param("sessionId"), req.VendorID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, snapshot, "Selection updated")
}

// ConfirmSelection godoc
// @Summary Proceed to contact details (requires at least one selection)
// @Tags Conversation
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.ConversationSnapshot
// @Router /conversations/{sessionId}/selection/confirm [post]
func (cc *ConversationController) ConfirmSelection(c *gin.Context) {
	snapshot, err := cc.conversationService.ConfirmSelection(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, snapshot, "Selection confirmed")
}

// Submit godoc
// @Summary Submit the planning request
// @Tags Conversation
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.SubmitRequest true "Contact details"
// @Success 200 {object} response_models.SubmissionResponse
// @Router /conversations/{sessionId}/submit [post]
func (cc *ConversationController) Submit(c *gin.Context) {
	var req request_models.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "customer_name and customer_phone are required")
		return
	}

	result, err := cc.conversationService.Submit(c.Request.Context(), c.Param("sessionId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Request submitted")
}

// Restart godoc
// @Summary Restart the conversation, keeping identity and message history
// @Tags Conversation
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.ConversationSnapshot
// @Router /conversations/{sessionId}/restart [post]
func (cc *ConversationController) Restart(c *gin.Context) {
	snapshot, err := cc.conversationService.Restart(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, snapshot, "Conversation restarted")
}
