package receipt

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

// ReviewInput chooses the terminal state for a pending receipt.
type ReviewInput struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
}

// List godoc
// @Summary List payment receipts
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=[]models.PaymentReceipt}
// @Router /admin/receipts [get]
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Receipts retrieved successfully", h.svc.ListReceipts()))
}

// Review godoc
// @Summary Approve or reject a payment receipt
// @Description Approval marks the owning user as paid
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Receipt ID"
// @Param input body ReviewInput true "Review Input"
// @Success 200 {object} utils.Response{data=models.PaymentReceipt}
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /admin/receipts/{id} [post]
func (h *Handler) Review(c *gin.Context) {
	var input ReviewInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	reviewedBy := c.GetString("adminUsername")
	r, err := h.svc.ReviewReceipt(c.Param("id"), input.Action == "approve", reviewedBy)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReceiptNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrAlreadyProcessed):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to review receipt"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Receipt reviewed successfully", r))
}
