package models

// Category is a node of the two-level service-category tree. A root category
// has no parent reference; a sub-category points at its root.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ParentID    string `json:"parent_category_id,omitempty"`
}

// IsRoot reports whether the category sits at the top level.
func (c Category) IsRoot() bool {
	return c.ParentID == ""
}

// CategoryDraft is the creation payload. ParentID is set when the navigator
// has a parent folder open, which attaches the new category beneath it.
type CategoryDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    string `json:"parent_id,omitempty"`
}
