package entity

import "messenger-hub/enum"

type Message struct {
	BaseEntity
	ExternalID    string             `json:"externalId" gorm:"type:varchar(255)"`
	MessengerType enum.MessengerType `json:"messengerType" gorm:"type:varchar(20);not null"`
	Text          string             `json:"text" gorm:"type:TEXT"`
	UserID        uint               `json:"userId" gorm:"not null;index"`
	ChatID        uint               `json:"chatId" gorm:"not null;index"`
	Status        enum.MessageStatus `json:"status" gorm:"type:varchar(10);default:'pending'"`

	User User `json:"-" gorm:"foreignKey:UserID;references:ID"`
	Chat Chat `json:"-" gorm:"foreignKey:ChatID;references:ID"`
}
