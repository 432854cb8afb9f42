// Package response writes the JSON envelope shared by all handlers:
// {"success": true, "data": ...} on success, or
// {"success": false, "error": {"code", "message", "details"}} on failure.
package response

import "github.com/gin-gonic/gin"

// Success writes a successful envelope with the given payload.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes a failure envelope with a machine-readable code and a
// human-readable message.
func Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ErrorWithDetails is Error with an extra details payload, used for
// per-field validation output.
func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
