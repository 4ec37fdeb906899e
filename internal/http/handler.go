package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"usina-leads/internal/http/middleware"
	"usina-leads/internal/model"
	"usina-leads/internal/service"
)

type Handler struct {
	distributions *service.DistributionService
	franchises    *service.FranchiseService
	servers       *service.ServerService
	advertising   *service.AdvertisingService
	log           zerolog.Logger
}

func NewHandler(
	distributions *service.DistributionService,
	franchises *service.FranchiseService,
	servers *service.ServerService,
	advertising *service.AdvertisingService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		distributions: distributions,
		franchises:    franchises,
		servers:       servers,
		advertising:   advertising,
		log:           log,
	}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := r.Group("/api")
	protected.Use(authMiddleware)

	protected.GET("/distribution", h.getDistribution)
	protected.POST("/distribution", h.registerDistribution)
	protected.GET("/distribution/records", h.listDistributionRecords)

	protected.GET("/franchises", h.listFranchises)
	protected.POST("/franchises", h.createFranchise)
	protected.GET("/franchises/:id", h.getFranchise)
	protected.PUT("/franchises/:id", h.updateFranchise)
	protected.GET("/franchises/:id/phones", h.listFranchisePhones)
	protected.POST("/franchises/:id/phones", h.createFranchisePhone)
	protected.GET("/franchises/:id/distribution", h.getFranchiseDistribution)

	protected.GET("/servers", h.listServers)
	protected.POST("/servers", h.createServer)
	protected.GET("/servers/:id", h.getServer)
	protected.PUT("/servers/:id", h.updateServer)
	protected.POST("/servers/:id/toggle-status", h.toggleServer)
	protected.GET("/servers/:id/distribution", h.getServerDistribution)
	protected.GET("/servers/:id/ads", h.listServerAds)
	protected.GET("/servers/:id/ads/count", h.countServerAds)
	protected.POST("/servers/:id/ads", h.activateServerAd)
	protected.PUT("/server-ads/:id/metrics", h.updateServerAdMetrics)
	protected.POST("/server-ads/:id/deactivate", h.deactivateServerAd)

	ads := h.advertising
	registerCatalog(protected, "/wallets", h, ads.Wallets, catalogRoutes{list: h.listWallets})
	registerCatalog(protected, "/portfolios", h, ads.Portfolios, catalogRoutes{get: h.getPortfolio})
	registerCatalog(protected, "/business-managers", h, ads.BusinessManagers, catalogRoutes{get: h.getBusinessManager})
	registerCatalog(protected, "/campaigns", h, ads.Campaigns, catalogRoutes{})
	registerCatalog(protected, "/ad-sets", h, ads.AdSets, catalogRoutes{})
	protected.GET("/ads/hierarchy", h.listAdsWithHierarchy)
	registerCatalog(protected, "/ads", h, ads.Ads, catalogRoutes{})
	registerCatalog(protected, "/apis", h, ads.APIs, catalogRoutes{})
}

func (h *Handler) principal(c *gin.Context) (model.Principal, bool) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return model.Principal{}, false
	}
	return principal, true
}

func (h *Handler) bind(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}

// dateQuery reads an optional YYYY-MM-DD query parameter. It writes the 400
// response itself when the value is malformed.
func (h *Handler) dateQuery(c *gin.Context, name string) (*model.Date, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	date, err := model.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return nil, false
	}
	return &date, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).
			Str("request_id", middleware.RequestID(c)).
			Str("route", c.FullPath()).
			Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func successResponse(data interface{}) gin.H {
	return gin.H{"data": data}
}

func errorResponse(message string) gin.H {
	return gin.H{"error": message}
}
