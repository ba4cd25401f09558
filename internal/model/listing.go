package model

// Listing is an item offered for sale as stored by the backend. Nullable
// columns are pointers, Tags is nil when the column is null.
type Listing struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	PriceCents  int64    `json:"price_cents"`
	Currency    string   `json:"currency"`
	Tags        []string `json:"tags"`
	Seller      *string  `json:"seller"`
	ImageURL    *string  `json:"image_url"`
	IsPublished bool     `json:"is_published"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}
