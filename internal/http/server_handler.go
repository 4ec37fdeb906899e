package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"usina-leads/internal/model"
)

type toggleStatusRequest struct {
	IsActive *bool `json:"is_active"`
}

func (h *Handler) listServers(c *gin.Context) {
	servers, err := h.servers.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(servers))
}

func (h *Handler) getServer(c *gin.Context) {
	server, err := h.servers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(server))
}

func (h *Handler) createServer(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var input model.ServerInput
	if !h.bind(c, &input) {
		return
	}

	server, err := h.servers.Create(c.Request.Context(), principal, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(server))
}

func (h *Handler) updateServer(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var input model.ServerInput
	if !h.bind(c, &input) {
		return
	}

	server, err := h.servers.Update(c.Request.Context(), principal, c.Param("id"), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(server))
}

func (h *Handler) toggleServer(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var req toggleStatusRequest
	if !h.bind(c, &req) {
		return
	}
	if req.IsActive == nil {
		c.JSON(http.StatusBadRequest, errorResponse("is_active is required"))
		return
	}

	server, err := h.servers.SetActive(c.Request.Context(), principal, c.Param("id"), *req.IsActive)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(server))
}

func (h *Handler) listServerAds(c *gin.Context) {
	ads, err := h.servers.ActiveAds(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(ads))
}

func (h *Handler) countServerAds(c *gin.Context) {
	count, err := h.servers.CountActiveAds(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"count": count}))
}

func (h *Handler) activateServerAd(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var input model.ActivateAdInput
	if !h.bind(c, &input) {
		return
	}

	serverAd, err := h.servers.ActivateAd(c.Request.Context(), principal, c.Param("id"), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(serverAd))
}

func (h *Handler) updateServerAdMetrics(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var input model.ServerAdMetrics
	if !h.bind(c, &input) {
		return
	}

	serverAd, err := h.servers.UpdateMetrics(c.Request.Context(), principal, c.Param("id"), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(serverAd))
}

func (h *Handler) deactivateServerAd(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	if err := h.servers.DeactivateAd(c.Request.Context(), principal, c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
