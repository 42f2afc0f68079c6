package response

import "github.com/gin-gonic/gin"

// JSON shapes match the public API contract: auth endpoints report failures
// as {"error": message}, the email endpoint wraps everything in a success flag.

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func SendFailure(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}
