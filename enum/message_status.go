package enum

// MessageStatus is the moderation state of a stored message.
// Pending is the only non-terminal state.
type MessageStatus string

const (
	MessageStatusPending  MessageStatus = "pending"
	MessageStatusApproved MessageStatus = "approved"
	MessageStatusRejected MessageStatus = "rejected"
	MessageStatusDeleted  MessageStatus = "deleted"
)
