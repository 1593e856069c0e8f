package res

import "messenger-hub/enum"

type UserResponse struct {
	ID            uint               `json:"id"`
	ExternalID    string             `json:"externalId"`
	MessengerType enum.MessengerType `json:"messengerType"`
	Username      string             `json:"username,omitempty"`
	FirstName     string             `json:"firstName,omitempty"`
	LastName      string             `json:"lastName,omitempty"`
	AccountID     uint               `json:"accountId"`
	CreatedAt     string             `json:"createdAt"`
}
