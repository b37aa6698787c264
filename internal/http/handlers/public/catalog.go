package public

import (
	handlershared "github.com/cerealshop/storefront/internal/http/handlers/shared"
	"github.com/cerealshop/storefront/internal/http/response"
	"github.com/cerealshop/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCereals 商品目录（筛选、排序、分页）
func (h *Handler) GetCereals(c *gin.Context) {
	page, err := h.CatalogService.List(c.Request.Context(), service.CatalogListInput{
		Page:      handlershared.ParsePage(c),
		Flavor:    c.Query("flavor"),
		MinPrice:  c.Query("min_price"),
		MaxPrice:  c.Query("max_price"),
		Sort:      c.Query("sort"),
		Direction: c.Query("direction"),
	})
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	response.SuccessWithPage(c, gin.H{
		"items":   page.Cereals,
		"flavors": page.Flavors,
		"filters": page.Filters,
	}, response.NewPagination(page.Page, page.PageSize, page.Total, page.TotalPages))
}

// GetFeaturedCereals 首页精选麦片
func (h *Handler) GetFeaturedCereals(c *gin.Context) {
	cereals, err := h.CatalogService.Featured(c.Request.Context(), handlershared.ParseLimit(c))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, cereals)
}

// GetCereal 商品详情
func (h *Handler) GetCereal(c *gin.Context) {
	id, ok := getCerealID(c)
	if !ok {
		return
	}
	cereal, err := h.CatalogService.Get(c.Request.Context(), id)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, cereal)
}

// GetFlavors 口味列表
func (h *Handler) GetFlavors(c *gin.Context) {
	flavors, err := h.CatalogService.DistinctFlavors(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	if flavors == nil {
		flavors = []string{}
	}
	response.Success(c, flavors)
}
