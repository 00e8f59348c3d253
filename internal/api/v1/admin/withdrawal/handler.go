package withdrawal

import (
	"errors"
	"net/http"

	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/services"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/utils"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *services.Coordinator
}

func NewHandler(svc *services.Coordinator) *Handler {
	return &Handler{svc: svc}
}

// ProcessInput chooses the terminal state for a pending request.
type ProcessInput struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
}

// List godoc
// @Summary List withdrawal requests
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=[]models.WithdrawalRequest}
// @Router /admin/withdrawals [get]
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Withdrawals retrieved successfully", h.svc.ListWithdrawals()))
}

// Process godoc
// @Summary Approve or reject a withdrawal request
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Withdrawal ID"
// @Param input body ProcessInput true "Process Input"
// @Success 200 {object} utils.Response{data=models.WithdrawalRequest}
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /admin/withdrawals/{id} [post]
func (h *Handler) Process(c *gin.Context) {
	var input ProcessInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	w, err := h.svc.ProcessWithdrawal(c.Param("id"), input.Action == "approve")
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWithdrawalNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrAlreadyProcessed):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to process withdrawal"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Withdrawal processed successfully", w))
}
