package user

import (
	"errors"
	"net/http"

	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/models"
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

func contextUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return nil, false
	}
	return v.(*models.User), true
}

// CurrentUser godoc
// @Summary Get current user
// @Description Get the authenticated user's snapshot, including the task set
// @Tags user
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=user.UserResponse}
// @Failure 401 {object} utils.Response
// @Router /auth/user [get]
func (h *Handler) CurrentUser(c *gin.Context) {
	u, ok := contextUser(c)
	if !ok {
		return
	}

	// Reload so the snapshot reflects the latest balance and task state,
	// not the copy the middleware resolved.
	latest, err := h.svc.CurrentUser(u.ID)
	if err == nil {
		u = latest
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User information retrieved successfully", NewUserResponse(u, "")))
}

// SubmitOrder godoc
// @Summary Submit an order action
// @Description Run one receive/give action through the task engine
// @Tags user
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body OrderInput true "Order Input"
// @Success 200 {object} utils.Response{data=user.OrderResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /orders [post]
func (h *Handler) SubmitOrder(c *gin.Context) {
	u, ok := contextUser(c)
	if !ok {
		return
	}

	var input OrderInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	snapshot, result, err := h.svc.SubmitOrder(u.ID, services.OrderAction(input.OrderType))
	if err != nil {
		var shortfall *services.QuotaShortfallError
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrQuotaNotSet),
			errors.Is(err, services.ErrInvalidOrderType),
			errors.As(err, &shortfall):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to process order"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Order processed successfully", OrderResponse{
		User:           NewUserResponse(snapshot, ""),
		Reward:         result.Reward,
		NewCompletions: result.NewCompletions,
	}))
}

// CreateWithdrawal godoc
// @Summary Create a withdrawal request
// @Description Request a payout; requires minimum amount, covered balance and a fully completed task set
// @Tags user
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body WithdrawalInput true "Withdrawal Input"
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /withdrawals [post]
func (h *Handler) CreateWithdrawal(c *gin.Context) {
	u, ok := contextUser(c)
	if !ok {
		return
	}

	var input WithdrawalInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	_, err := h.svc.CreateWithdrawal(u.ID, input.Amount, input.WalletAddress)
	if err != nil {
		var incomplete *services.TasksIncompleteError
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrWithdrawalMinimum),
			errors.Is(err, services.ErrInsufficientBalance),
			errors.As(err, &incomplete):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create withdrawal request"))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Withdrawal request created", nil))
}

// ListReceipts godoc
// @Summary List own payment receipts
// @Tags user
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=[]user.ReceiptResponse}
// @Failure 401 {object} utils.Response
// @Router /receipts [get]
func (h *Handler) ListReceipts(c *gin.Context) {
	u, ok := contextUser(c)
	if !ok {
		return
	}

	receipts := h.svc.ListUserReceipts(u.ID)
	out := make([]ReceiptResponse, 0, len(receipts))
	for _, r := range receipts {
		out = append(out, NewReceiptResponse(r))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Receipts retrieved successfully", out))
}
