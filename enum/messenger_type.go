package enum

// MessengerType tags which external platform an identity belongs to.
type MessengerType string

const (
	MessengerTelegram MessengerType = "telegram"
	MessengerDiscord  MessengerType = "discord"
	MessengerMax      MessengerType = "MAX"
	MessengerVK       MessengerType = "vk"
)
