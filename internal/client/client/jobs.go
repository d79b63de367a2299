package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/jobpilot/internal/client/models"
)

// SearchJobs returns whatever the backend matched, in backend order.
func (c *HTTPClient) SearchJobs(ctx context.Context, req models.JobSearchRequest) ([]models.Job, error) {
	var out []models.Job
	if err := c.doJSON(ctx, http.MethodPost, "/jobs/search", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ApplyToJobs(ctx context.Context, userID int64, req models.ApplyRequest) (*models.ApplyResponse, error) {
	q := url.Values{"user_id": {strconv.FormatInt(userID, 10)}}

	var out models.ApplyResponse
	if err := c.doJSON(ctx, http.MethodPost, "/jobs/apply?"+q.Encode(), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListApplications(ctx context.Context, userID int64) ([]models.JobApplication, error) {
	var out []models.JobApplication
	if err := c.doJSON(ctx, http.MethodGet, "/jobs/applications/"+strconv.FormatInt(userID, 10), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
