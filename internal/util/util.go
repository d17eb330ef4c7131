package util

import (
	"github.com/google/uuid"
)

// NewRequestID generates a random identifier for a request
func NewRequestID() string {
	return uuid.New().String()
}
