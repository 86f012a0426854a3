package typed

import (
	"strings"

	"github.com/google/uuid"
)

// MagicCookie starts branch IDs of RFC 3261 compliant clients.
const MagicCookie = "z9hG4bK"

// NewBranch returns a new unique RFC 3261 branch ID.
func NewBranch() string { return MagicCookie + "." + uuid.NewString() }

// NewTag returns a new random tag for the To or From header.
func NewTag() string { return strings.ReplaceAll(uuid.NewString(), "-", "")[:16] }
