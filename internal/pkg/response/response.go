package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope:
// {"success": true, "data": ...} or {"success": false, "error": {...}}.

func OK(c *gin.Context, data any) {
	Success(c, http.StatusOK, data)
}

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func AbortError(c *gin.Context, statusCode int, code string, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
