package user

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

// ListUsers godoc
// @Summary List users
// @Description List all users, optionally filtered by user number or username
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param search query string false "Search term"
// @Success 200 {object} utils.Response{data=[]user.AdminUserResponse}
// @Failure 403 {object} utils.Response
// @Router /admin/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	search := c.Query("search")

	users := h.svc.ListUsers(search)
	out := make([]AdminUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewAdminUserResponse(u))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Users retrieved successfully", out))
}

// SetQuota godoc
// @Summary Set a user's quota
// @Description Assign the quota; the task set is generated on the first assignment only
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Param input body SetQuotaInput true "Quota Input"
// @Success 200 {object} utils.Response{data=user.AdminUserResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/users/{id}/quota [post]
func (h *Handler) SetQuota(c *gin.Context) {
	var input SetQuotaInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	u, err := h.svc.SetQuota(c.Param("id"), input.Quota)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Quota updated successfully", NewAdminUserResponse(u)))
}

// AddBalance godoc
// @Summary Credit a user's balance
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Param input body AddBalanceInput true "Balance Input"
// @Success 200 {object} utils.Response{data=user.AdminUserResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/users/{id}/balance [post]
func (h *Handler) AddBalance(c *gin.Context) {
	var input AddBalanceInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	u, err := h.svc.AddBalance(c.Param("id"), input.Amount)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Balance updated successfully", NewAdminUserResponse(u)))
}

// MarkPaid godoc
// @Summary Mark a user as paid
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Success 200 {object} utils.Response{data=user.AdminUserResponse}
// @Failure 404 {object} utils.Response
// @Router /admin/users/{id}/paid [post]
func (h *Handler) MarkPaid(c *gin.Context) {
	u, err := h.svc.MarkPaid(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User marked as paid", NewAdminUserResponse(u)))
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
	case errors.Is(err, services.ErrInvalidQuota):
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update user"))
	}
}
