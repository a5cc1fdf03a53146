package tree

import (
	"fmt"
	"regexp"
	"strings"

	"notedeck/internal/domain"
	"notedeck/internal/domain/models"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	slugCharsRe  = regexp.MustCompile(`[^a-z0-9-]`)
)

// Slugify derives a folder id from its display name: lowercase, runs of
// whitespace collapsed to hyphens, everything outside [a-z0-9-] stripped.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = whitespaceRe.ReplaceAllString(slug, "-")
	slug = slugCharsRe.ReplaceAllString(slug, "")
	return slug
}

// NewFolder builds a folder named name under parentID, appended as the
// last sibling. The id is the slugified name; ids are unique across the
// whole forest regardless of nesting level, so a collision at any depth
// is rejected with a conflict.
//
// The returned folder is not added to the slice; callers append it after
// the call succeeds.
func NewFolder(folders []models.Folder, name string, parentID *string) (models.Folder, error) {
	slug := Slugify(name)
	if slug == "" {
		return models.Folder{}, fmt.Errorf("%w: folder name must contain letters or digits", domain.ErrValidation)
	}

	if _, exists := find(folders, slug); exists {
		return models.Folder{}, &domain.ConflictError{
			Message:      fmt.Sprintf("a folder named %q already exists", name),
			ResourceType: "folder",
			ResourceID:   slug,
		}
	}

	if parentID != nil {
		if _, ok := find(folders, *parentID); !ok {
			return models.Folder{}, fmt.Errorf("parent folder %s: %w", *parentID, domain.ErrNotFound)
		}
	}

	return models.Folder{
		ID:       slug,
		Name:     strings.TrimSpace(name),
		ParentID: parentID,
		Order:    len(Children(folders, parentID)),
	}, nil
}
