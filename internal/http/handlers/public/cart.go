package public

import (
	"github.com/cerealshop/storefront/internal/http/response"
	"github.com/cerealshop/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加入购物车请求
type AddCartItemRequest struct {
	CerealID uint `json:"cereal_id"`
	Quantity int  `json:"quantity"`
}

// UpdateCartItemRequest 修改数量请求
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	view, err := h.CartService.View(c.Request.Context(), sessionID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// AddCartItem 加入购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	if err := h.CartService.AddItem(c.Request.Context(), service.AddCartItemInput{
		SessionID: sessionID,
		CerealID:  req.CerealID,
		Quantity:  req.Quantity,
	}); err != nil {
		respondCartError(c, err)
		return
	}
	h.respondCartView(c, "cart.item_added")
}

// UpdateCartItem 修改购物车项数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	itemID, ok := getCartItemID(c)
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	if err := h.CartService.UpdateQuantity(c.Request.Context(), sessionID, itemID, req.Quantity); err != nil {
		respondCartError(c, err)
		return
	}
	h.respondCartView(c, "cart.updated")
}

// DeleteCartItem 删除购物车项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	itemID, ok := getCartItemID(c)
	if !ok {
		return
	}
	if err := h.CartService.RemoveItem(c.Request.Context(), sessionID, itemID); err != nil {
		respondCartError(c, err)
		return
	}
	h.respondCartView(c, "cart.item_removed")
}

// respondCartView 变更成功后返回最新购物车与提示语
func (h *Handler) respondCartView(c *gin.Context, key string) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	view, err := h.CartService.View(c.Request.Context(), sessionID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	respondSuccess(c, key, view)
}
