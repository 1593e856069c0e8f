package req

type CreateAccountRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,min=5,max=20"`
	Username  *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	FirstName string  `json:"firstName,omitempty"`
	LastName  string  `json:"lastName,omitempty"`
}

// UpdateAccountRequest carries a partial update. A nil field means "not
// provided" and leaves the stored value untouched; an explicit JSON null is
// treated the same way.
type UpdateAccountRequest struct {
	Username  *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}
