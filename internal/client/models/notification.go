package models

import (
	"encoding/json"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notification types understood by the backend.
const (
	NotificationJobsFound        = "jobs_found"
	NotificationApplicationSent  = "application_sent"
	NotificationResponseReceived = "response_received"
)

// ButtonsData describes the inline keyboard the backend attaches to a
// Telegram message, one button per row.
type ButtonsData struct {
	Buttons []tgbotapi.InlineKeyboardButton `json:"buttons"`
}

// NewButtonsData builds callback buttons from alternating text/data pairs.
// A trailing unpaired text is ignored.
func NewButtonsData(pairs ...string) *ButtonsData {
	bd := &ButtonsData{}
	for i := 0; i+1 < len(pairs); i += 2 {
		bd.Buttons = append(bd.Buttons, tgbotapi.NewInlineKeyboardButtonData(pairs[i], pairs[i+1]))
	}
	return bd
}

// NotificationRequest is the body of POST /telegram/send-notification.
type NotificationRequest struct {
	UserID           int64           `json:"user_id"`
	NotificationType string          `json:"notification_type"`
	Title            string          `json:"title"`
	Message          string          `json:"message"`
	Data             json.RawMessage `json:"data,omitempty"`
	ButtonsData      *ButtonsData    `json:"buttons_data,omitempty"`
}

// Notification is a message stored (and possibly delivered) by the backend.
type Notification struct {
	ID               int64     `json:"id"`
	NotificationType string    `json:"notification_type"`
	Title            string    `json:"title"`
	Message          string    `json:"message"`
	IsSent           bool      `json:"is_sent"`
	CreatedAt        Timestamp `json:"created_at"`
}
