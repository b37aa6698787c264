package public

import (
	"errors"

	"github.com/cerealshop/storefront/internal/constants"
	handlershared "github.com/cerealshop/storefront/internal/http/handlers/shared"
	"github.com/cerealshop/storefront/internal/http/response"
	"github.com/cerealshop/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
	data   gin.H
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		handlershared.RespondErrorWithData(c, response.CodeValidation, "error.validation_failed", gin.H{
			"errors": validationErr.Fields,
		}, nil)
		return
	}
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			handlershared.RespondErrorWithData(c, rule.code, rule.key, cloneData(rule.data), nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

// cloneData 响应会写入 request_id，规则表中的数据不能被复用修改
func cloneData(data gin.H) gin.H {
	if data == nil {
		return nil
	}
	out := make(gin.H, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}

var catalogErrorRules = []mappedHandlerError{
	{target: service.ErrCerealNotFound, code: response.CodeNotFound, key: "error.cereal_not_found"},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrCerealNotFound, code: response.CodeNotFound, key: "error.cereal_not_found"},
	{target: service.ErrCartItemNotFound, code: response.CodeNotFound, key: "error.cart_item_not_found"},
	{target: service.ErrCartItemForbidden, code: response.CodeForbidden, key: "error.cart_item_forbidden"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeConflict, key: "error.cart_empty", data: gin.H{"redirect": constants.RedirectCart}},
}

func respondCatalogError(c *gin.Context, err error) {
	respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.internal_error")
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.internal_error")
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.internal_error")
}
