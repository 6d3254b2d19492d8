// Package resputil centralizes the response shapes of the original API:
// entities and arrays are returned as plain JSON bodies, failures as
// {"error": "..."} with the matching status code.
package resputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success writes data as the 200 response body.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created writes data as the 201 response body.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Deleted writes the fixed deletion confirmation.
func Deleted(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}

// BadRequest reports a validation failure.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// Unauthorized rejects a caller without an admin session. The body is fixed;
// no detail about the failure mode leaks to the client.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
}

// NotFound reports a missing mutation target.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}

// Error reports a store or internal failure with a generic message. Details
// belong in the server log, not the response.
func Error(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
