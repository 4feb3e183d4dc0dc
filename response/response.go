package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody là envelope lỗi của API: {"message": "..."}
type ErrorBody struct {
	Message string `json:"message"`
}

// OK trả về entity trực tiếp, không bọc envelope
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Message: message})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrorBody{Message: "Unauthorized"})
}

// Forbidden trả về response không có quyền
func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, ErrorBody{Message: message})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorBody{Message: message})
}

// Conflict trả về response conflict (409)
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, ErrorBody{Message: message})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorBody{Message: message})
}
