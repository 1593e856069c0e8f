package dto

import "messenger-hub/enum"

// ExternalProfile is the platform-agnostic shape every adapter must reduce
// its native user object to before it reaches the identity core. Adapters
// validate it at their boundary.
type ExternalProfile struct {
	ExternalID    string             `json:"externalId" validate:"required"`
	MessengerType enum.MessengerType `json:"messengerType" validate:"required,oneof=telegram discord MAX vk"`
	Username      string             `json:"username,omitempty"`
	FirstName     string             `json:"firstName,omitempty"`
	LastName      string             `json:"lastName,omitempty"`
}
