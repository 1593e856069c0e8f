package entity

// Account is the cross-platform identity anchor. Email, phone and username
// are optional but unique when present; nullable columns keep absent values
// from colliding.
type Account struct {
	BaseEntity
	Email     *string `json:"email,omitempty" gorm:"uniqueIndex;type:varchar(100)"`
	Phone     *string `json:"phone,omitempty" gorm:"uniqueIndex;type:varchar(20)"`
	Username  *string `json:"username,omitempty" gorm:"uniqueIndex;type:varchar(50)"`
	FirstName string  `json:"firstName" gorm:"type:varchar(100)"`
	LastName  string  `json:"lastName" gorm:"type:varchar(100)"`

	Users []User `json:"-" gorm:"foreignKey:AccountID"`
}
