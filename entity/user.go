package entity

import "messenger-hub/enum"

// User is one platform-native identity bound to exactly one Account.
// The (external_id, messenger_type) pair is unique: the same platform user
// can never be represented by two rows.
type User struct {
	BaseEntity
	ExternalID    string             `json:"externalId" gorm:"type:varchar(255);not null;uniqueIndex:idx_user_external_identity"`
	MessengerType enum.MessengerType `json:"messengerType" gorm:"type:varchar(20);not null;uniqueIndex:idx_user_external_identity"`
	Username      string             `json:"username,omitempty" gorm:"type:varchar(100)"`
	FirstName     string             `json:"firstName,omitempty" gorm:"type:varchar(100)"`
	LastName      string             `json:"lastName,omitempty" gorm:"type:varchar(100)"`
	AccountID     uint               `json:"accountId" gorm:"not null;index"`

	Account Account `json:"-" gorm:"foreignKey:AccountID;references:ID"`
}
