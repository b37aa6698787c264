package public

import (
	handlershared "github.com/cerealshop/storefront/internal/http/handlers/shared"
	"github.com/cerealshop/storefront/internal/models"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondSuccess(c *gin.Context, key string, data interface{}) {
	handlershared.RespondSuccessKey(c, key, data)
}

func getSessionID(c *gin.Context) (models.SessionID, bool) {
	return handlershared.GetSessionID(c)
}

func getCerealID(c *gin.Context) (uint, bool) {
	return handlershared.ParseUintParam(c, "id", "error.cereal_id_invalid")
}

func getCartItemID(c *gin.Context) (uint, bool) {
	return handlershared.ParseUintParam(c, "id", "error.cart_item_id_invalid")
}
