package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/jobpilot/internal/client/models"
)

func (c *HTTPClient) CreateUser(ctx context.Context, user models.UserCreate) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, http.MethodPost, "/users/", user, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, http.MethodGet, "/users/"+strconv.FormatInt(userID, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, http.MethodPut, "/users/"+strconv.FormatInt(userID, 10), update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
