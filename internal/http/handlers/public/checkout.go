package public

import (
	"github.com/cerealshop/storefront/internal/constants"
	"github.com/cerealshop/storefront/internal/http/response"
	"github.com/cerealshop/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCheckout 结账页汇总；空购物车返回跳转提示
func (h *Handler) GetCheckout(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	summary, err := h.CheckoutService.BuildSummary(c.Request.Context(), sessionID)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, summary)
}

// SubmitCheckout 提交订单：校验联系信息后清空购物车
func (h *Handler) SubmitCheckout(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req service.SubmitOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	ack, err := h.CheckoutService.SubmitOrder(c.Request.Context(), sessionID, req)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	respondSuccess(c, "checkout.order_placed", gin.H{
		"order":    ack,
		"redirect": constants.RedirectHome,
	})
}
