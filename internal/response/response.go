package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Msg  string `json:"msg"`
	Code string `json:"code,omitempty"`
}

// SendError writes an error envelope
func SendError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, ErrorResponse{Msg: msg, Code: code})
}

// SendSuccess wraps data under a single named key, e.g. {"articles": [...]}
func SendSuccess(c *gin.Context, status int, key string, data interface{}) {
	c.JSON(status, gin.H{key: data})
}

// SendMessage writes a bare {"msg": ...} body
func SendMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"msg": msg})
}
