package session

import (
	"strings"

	"github.com/google/uuid"
)

// NewID generates an opaque session id for hosts that do not mint their
// own. Ids are lowercase hex without dashes, safe for cookies and URLs.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
