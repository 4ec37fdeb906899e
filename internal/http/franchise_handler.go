package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"usina-leads/internal/model"
)

func (h *Handler) listFranchises(c *gin.Context) {
	franchises, err := h.franchises.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(franchises))
}

func (h *Handler) getFranchise(c *gin.Context) {
	franchise, err := h.franchises.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(franchise))
}

func (h *Handler) createFranchise(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var input model.FranchiseInput
	if !h.bind(c, &input) {
		return
	}

	franchise, err := h.franchises.Create(c.Request.Context(), principal, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(franchise))
}

func (h *Handler) updateFranchise(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var input model.FranchiseInput
	if !h.bind(c, &input) {
		return
	}

	franchise, err := h.franchises.Update(c.Request.Context(), principal, c.Param("id"), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(franchise))
}

func (h *Handler) listFranchisePhones(c *gin.Context) {
	phones, err := h.franchises.Phones(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(phones))
}

func (h *Handler) createFranchisePhone(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var input model.FranchisePhoneInput
	if !h.bind(c, &input) {
		return
	}

	phone, err := h.franchises.CreatePhone(c.Request.Context(), principal, c.Param("id"), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(phone))
}
