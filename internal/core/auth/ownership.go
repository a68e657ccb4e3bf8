package auth

import (
	"strings"

	"github.com/kazimashinani/jobboard/internal/core/domain"
)

// Owns reports whether actorID is the owner recorded as ownerID. Ids are
// compared in canonical form (trimmed, lower-case hex); empty ids never match.
func Owns(ownerID, actorID string) bool {
	owner := canonicalID(ownerID)
	actor := canonicalID(actorID)
	return owner != "" && owner == actor
}

// Authorize returns domain.ErrForbidden unless actorID owns the resource.
// Callers must have confirmed the resource exists.
func Authorize(ownerID, actorID string) error {
	if !Owns(ownerID, actorID) {
		return domain.ErrForbidden
	}
	return nil
}

func canonicalID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
