package handler

import (
	"net/http"

	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/apierror"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/dto"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/service"

	"github.com/gin-gonic/gin"
)

type MedicationsHandler struct{ svc service.MedicationService }

func NewMedicationsHandler(svc service.MedicationService) *MedicationsHandler {
	return &MedicationsHandler{svc: svc}
}

func (h *MedicationsHandler) Create(c *gin.Context) {
	var req dto.MedicationStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MedicationsHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MedicationsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list medication stocks"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MedicationsHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.MedicationStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MedicationsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
