package entity

// Message is a directed note between two users.
type Message struct {
	Base
	SenderID    string `gorm:"size:36;not null;index:idx_message_pair,priority:2"`
	RecipientID string `gorm:"size:36;not null;index:idx_message_pair,priority:1"`
	Content     string `gorm:"type:text;not null"`
	IsRead      bool   `gorm:"not null;default:false"`
}
