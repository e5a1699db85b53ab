package snippets

import (
	"strings"

	"github.com/google/uuid"

	perrors "github.com/coderefine/coderefine/internal/errors"
)

// LinkPrefix starts every share link.
const LinkPrefix = "coderefine://snippet/"

// Link returns the share link for a snippet id.
func Link(id string) string {
	return LinkPrefix + id
}

// ParseLink extracts the snippet id from a share link. A bare id is accepted
// too. The id must be a UUID.
func ParseLink(link string) (string, error) {
	s := strings.TrimSpace(link)
	s = strings.TrimPrefix(s, LinkPrefix)
	id, err := uuid.Parse(s)
	if err != nil {
		return "", perrors.InvalidShareLink(link)
	}
	return id.String(), nil
}
