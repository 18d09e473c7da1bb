package handler

import (
	"errors"
	"net/http"

	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/apierror"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/dto"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/middleware"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/model"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrdersHandler serves one order domain (medication or material); the router
// mounts an instance per domain under its own path prefix.
type OrdersHandler struct {
	orders    service.OrderService
	reconcile service.ReconcileService
}

func NewOrdersHandler(orders service.OrderService, reconcile service.ReconcileService) *OrdersHandler {
	return &OrdersHandler{orders: orders, reconcile: reconcile}
}

func (h *OrdersHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}

	claims := middleware.GetClaims(c)
	requesterID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Malformed token"))
		return
	}

	resp, err := h.orders.Place(c.Request.Context(), requesterID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OrdersHandler) ListPending(c *gin.Context) {
	resp, err := h.orders.ListPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list pending orders"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdersHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateState godoc
// @Summary Accept or reject a pending order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param body body dto.UpdateOrderStateRequest true "Target state"
// @Success 200 {object} dto.OrderResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/orders/{domain}/{id}/state [put]
func (h *OrdersHandler) UpdateState(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateOrderStateRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.reconcile.Resolve(c.Request.Context(), id, model.OrderState(req.State))
	if err != nil {
		c.JSON(reconcileStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdersHandler) ExportPDF(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	path, err := h.orders.ExportPDF(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.FileAttachment(path, "order.pdf")
}

func reconcileStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrMissingOrderID),
		errors.Is(err, service.ErrMissingItemID),
		errors.Is(err, service.ErrInvalidTarget):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrOrderInProgress):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
