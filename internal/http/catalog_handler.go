package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"usina-leads/internal/repository"
	"usina-leads/internal/service"
)

// catalogRoutes replaces the default list or get handler of a catalog entity.
type catalogRoutes struct {
	list gin.HandlerFunc
	get  gin.HandlerFunc
}

// registerCatalog mounts list, get, create, update and delete for one entity.
// Lists accept the parent id as a query parameter named after the parent column.
func registerCatalog[T repository.Entity, I any](group *gin.RouterGroup, path string, h *Handler, catalog *service.Catalog[T, I], routes catalogRoutes) {
	list := routes.list
	if list == nil {
		list = func(c *gin.Context) {
			parentID := ""
			if catalog.Parent != "" {
				parentID = c.Query(catalog.Parent)
			}
			items, err := catalog.List(c.Request.Context(), parentID)
			if err != nil {
				h.handleError(c, err)
				return
			}
			c.JSON(http.StatusOK, successResponse(items))
		}
	}

	get := routes.get
	if get == nil {
		get = func(c *gin.Context) {
			item, err := catalog.Get(c.Request.Context(), c.Param("id"))
			if err != nil {
				h.handleError(c, err)
				return
			}
			c.JSON(http.StatusOK, successResponse(item))
		}
	}

	group.GET(path, list)
	group.GET(path+"/:id", get)

	group.POST(path, func(c *gin.Context) {
		principal, ok := h.principal(c)
		if !ok {
			return
		}
		var input I
		if !h.bind(c, &input) {
			return
		}
		item, err := catalog.Create(c.Request.Context(), principal, input)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusCreated, successResponse(item))
	})

	group.PUT(path+"/:id", func(c *gin.Context) {
		principal, ok := h.principal(c)
		if !ok {
			return
		}
		var input I
		if !h.bind(c, &input) {
			return
		}
		item, err := catalog.Update(c.Request.Context(), principal, c.Param("id"), input)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, successResponse(item))
	})

	group.DELETE(path+"/:id", func(c *gin.Context) {
		principal, ok := h.principal(c)
		if !ok {
			return
		}
		if err := catalog.Delete(c.Request.Context(), principal, c.Param("id")); err != nil {
			h.handleError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}

func (h *Handler) listWallets(c *gin.Context) {
	wallets, err := h.advertising.WalletSummaries(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(wallets))
}

func (h *Handler) getPortfolio(c *gin.Context) {
	details, err := h.advertising.PortfolioDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(details))
}

func (h *Handler) getBusinessManager(c *gin.Context) {
	details, err := h.advertising.BusinessManagerDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(details))
}

func (h *Handler) listAdsWithHierarchy(c *gin.Context) {
	ads, err := h.advertising.AdsWithHierarchy(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(ads))
}
