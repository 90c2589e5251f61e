package entity

// Customer is the user profile of a subscribing shopper.
type Customer struct {
	ID          int64  `json:"id"`
	UserLogin   string `json:"user_login"`
	DisplayName string `json:"display_name"`
	Email       string `json:"user_email"`
}
