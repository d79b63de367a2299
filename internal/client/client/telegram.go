package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/jobpilot/internal/client/models"
)

func (c *HTTPClient) SendNotification(ctx context.Context, req models.NotificationRequest) (*models.Notification, error) {
	var out models.Notification
	if err := c.doJSON(ctx, http.MethodPost, "/telegram/send-notification", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListNotifications returns the user's notifications, newest first.
func (c *HTTPClient) ListNotifications(ctx context.Context, userID int64) ([]models.Notification, error) {
	var out []models.Notification
	if err := c.doJSON(ctx, http.MethodGet, "/telegram/notifications/"+strconv.FormatInt(userID, 10), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) SetupWebhook(ctx context.Context) (*models.MessageResponse, error) {
	var out models.MessageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/telegram/setup-webhook", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteWebhook(ctx context.Context) (*models.MessageResponse, error) {
	var out models.MessageResponse
	if err := c.doJSON(ctx, http.MethodDelete, "/telegram/webhook", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
