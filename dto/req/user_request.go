package req

import "messenger-hub/enum"

type CreateUserRequest struct {
	ExternalID    string             `json:"externalId" validate:"required"`
	MessengerType enum.MessengerType `json:"messengerType" validate:"required,oneof=telegram discord MAX vk"`
	Username      string             `json:"username,omitempty"`
	FirstName     string             `json:"firstName,omitempty"`
	LastName      string             `json:"lastName,omitempty"`
	AccountID     uint               `json:"accountId,omitempty"`
}

type UpdateUserRequest struct {
	Username  *string `json:"username,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}
