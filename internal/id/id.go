package id

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID returns a random 32-character hex identifier, used for request
// ids and token ids.
func GenerateID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
