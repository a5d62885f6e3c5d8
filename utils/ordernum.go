package utils

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// GenerateOrderNumber returns a 16 character uppercase hex identifier
// used for order and reservation numbers. Random, never reassigned.
func GenerateOrderNumber() string {
	u := uuid.New()
	return strings.ToUpper(hex.EncodeToString(u[:8]))
}
