// Package response defines the JSON envelope shared by every endpoint:
// a success flag and human message, plus data on success or a machine
// readable error code on failure.
package response

import "github.com/gin-gonic/gin"

type Body struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK writes a success envelope with the given status and optional data.
func OK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Body{Success: true, Message: message, Data: data})
}

// Fail writes an error envelope carrying a machine-readable code. The
// message must never contain internal error text.
func Fail(c *gin.Context, status int, message string, code string) {
	c.JSON(status, Body{Success: false, Message: message, Error: code})
}
