// Package categories views the flat category list the core API returns as a
// two-level tree. Parentage lives in each record's parent reference; the
// console only ever navigates one level deep.
package categories

import "lifekitadmin/models"

// Roots returns the top-level categories, preserving API order.
func Roots(all []models.Category) []models.Category {
	roots := make([]models.Category, 0, len(all))
	for _, c := range all {
		if c.IsRoot() {
			roots = append(roots, c)
		}
	}
	return roots
}

// ChildrenOf returns the direct sub-categories of the given parent.
func ChildrenOf(all []models.Category, parentID string) []models.Category {
	children := make([]models.Category, 0)
	for _, c := range all {
		if c.ParentID == parentID {
			children = append(children, c)
		}
	}
	return children
}

// Find returns the category with the given ID, or false when absent.
func Find(all []models.Category, id string) (models.Category, bool) {
	for _, c := range all {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}
