package response

// 业务状态码，沿用 HTTP 语义；响应本身始终为 HTTP 200
const (
	CodeOK              = 0
	CodeBadRequest      = 400
	CodeUnauthorized    = 401
	CodeForbidden       = 403
	CodeNotFound        = 404
	CodeConflict        = 409
	CodeValidation      = 422
	CodeTooManyRequests = 429
	CodeInternal        = 500
)
