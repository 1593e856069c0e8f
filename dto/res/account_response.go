package res

type AccountResponse struct {
	ID        uint    `json:"id"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Username  *string `json:"username,omitempty"`
	FirstName string  `json:"firstName,omitempty"`
	LastName  string  `json:"lastName,omitempty"`
	CreatedAt string  `json:"createdAt"`
}
