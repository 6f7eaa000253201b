// Package api defines the uniform JSON response envelope.
package api

import "github.com/gin-gonic/gin"

// ErrorBody describes a failure; Code mirrors the HTTP status.
type ErrorBody struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Envelope is the response wrapper shared by every endpoint.
type Envelope struct {
	Status string     `json:"status"`
	Data   any        `json:"data,omitempty"`
	Error  *ErrorBody `json:"error,omitempty"`
}

// Success writes a success envelope with the given payload.
func Success(c *gin.Context, code int, data any) {
	c.JSON(code, Envelope{Status: "success", Data: data})
}

// Error writes an error envelope.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Envelope{Status: "error", Error: &ErrorBody{Message: message, Code: code}})
}

// AbortError writes an error envelope and stops the handler chain, so
// downstream handlers never run.
func AbortError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, Envelope{Status: "error", Error: &ErrorBody{Message: message, Code: code}})
}
