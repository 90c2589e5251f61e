package entity

// Product is a catalog product as needed by the subscription list.
type Product struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	InterestEnabled bool   `json:"interest_enabled"`
}
