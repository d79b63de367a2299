// Package models defines the records exchanged with the jobpilot backend.
// They mirror the backend JSON one to one; no invariants are enforced here.
package models

// User is a registered job seeker.
type User struct {
	ID             int64   `json:"id"`
	Email          string  `json:"email"`
	FullName       string  `json:"full_name"`
	TelegramChatID *string `json:"telegram_chat_id,omitempty"`
	IsActive       bool    `json:"is_active"`
}

// UserCreate is the sign-up payload. EmailPassword is the mailbox password the
// backend uses to send applications on the user's behalf.
type UserCreate struct {
	Email          string  `json:"email"`
	FullName       string  `json:"full_name"`
	TelegramChatID *string `json:"telegram_chat_id,omitempty"`
	EmailPassword  *string `json:"email_password,omitempty"`
}

// UserUpdate is a partial update; nil fields are not sent.
type UserUpdate struct {
	Email          *string `json:"email,omitempty"`
	FullName       *string `json:"full_name,omitempty"`
	TelegramChatID *string `json:"telegram_chat_id,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
	EmailPassword  *string `json:"email_password,omitempty"`
}

// MessageResponse is the {"message": ...} acknowledgement returned by
// delete and webhook endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
