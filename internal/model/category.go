package model

// Category is a user-defined grouping for transactions. Color and icon are
// opaque presentation tokens; the client never interprets them beyond
// displaying what the backend returns.
type Category struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
	Icon        string   `json:"icon"`
	CreatedAt   DateTime `json:"created_at"`
}

// CategoryParams carries the fields for category creation.
type CategoryParams struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// CategoryUpdate carries partial category edits. Nil fields are left
// unchanged by the backend.
type CategoryUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
	Icon        *string `json:"icon,omitempty"`
}
