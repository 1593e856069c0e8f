package entity

import "messenger-hub/enum"

// Chat is a conversation container on a platform. The core only reads
// chats; rows appear through webhook ingestion.
type Chat struct {
	BaseEntity
	ExternalID    string             `json:"externalId" gorm:"type:varchar(255);not null;uniqueIndex:idx_chat_external_identity"`
	MessengerType enum.MessengerType `json:"messengerType" gorm:"type:varchar(20);not null;uniqueIndex:idx_chat_external_identity"`
	Title         string             `json:"title,omitempty" gorm:"type:varchar(255)"`
	ChatType      enum.ChatType      `json:"chatType" gorm:"type:varchar(10)"`

	Messages []Message `json:"-" gorm:"foreignKey:ChatID"`
}
