package dto

// Pagination is the envelope every list endpoint returns next to its items.
type Pagination struct {
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
	Limit       int   `json:"limit" example:"10"`
	Page        int   `json:"page" example:"1"`
	Total       int64 `json:"total" example:"25"`
	TotalPages  int   `json:"totalPages" example:"3"`
}

// ListParams carries validated list query options down to repositories.
type ListParams struct {
	Page   int
	Limit  int
	Search string
	Sort   string
	Order  string
}
