package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"usina-leads/internal/model"
)

func (h *Handler) distributionQuery(c *gin.Context) (model.DistributionQuery, bool) {
	date, ok := h.dateQuery(c, "date")
	if !ok {
		return model.DistributionQuery{}, false
	}
	serverID := strings.TrimSpace(c.Query("server_id"))
	if serverID == "" {
		serverID = model.AllServers
	}
	return model.DistributionQuery{
		ServerID:    serverID,
		FranchiseID: strings.TrimSpace(c.Query("franchise_id")),
		Date:        date,
	}, true
}

func (h *Handler) getDistribution(c *gin.Context) {
	query, ok := h.distributionQuery(c)
	if !ok {
		return
	}

	report, err := h.distributions.Report(c.Request.Context(), query)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(report))
}

func (h *Handler) listDistributionRecords(c *gin.Context) {
	query, ok := h.distributionQuery(c)
	if !ok {
		return
	}

	records, err := h.distributions.Records(c.Request.Context(), query)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(records))
}

func (h *Handler) getServerDistribution(c *gin.Context) {
	date, ok := h.dateQuery(c, "date")
	if !ok {
		return
	}

	report, err := h.distributions.ServerReport(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(report))
}

func (h *Handler) getFranchiseDistribution(c *gin.Context) {
	date, ok := h.dateQuery(c, "date")
	if !ok {
		return
	}

	report, err := h.distributions.FranchiseReport(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(report))
}

func (h *Handler) registerDistribution(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	var input model.RegisterDistributionInput
	if !h.bind(c, &input) {
		return
	}

	entry, err := h.distributions.Register(c.Request.Context(), principal, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(entry))
}
