package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/jobpilot/internal/client/models"
)

// UploadResume sends r as the multipart field "file". The backend decides
// whether the extension is acceptable.
func (c *HTTPClient) UploadResume(ctx context.Context, userID int64, filename string, r io.Reader) (*models.Resume, error) {
	path := "/resumes/upload/" + strconv.FormatInt(userID, 10)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("POST %s: build form: %w", path, err)
	}
	if _, err := io.Copy(fw, r); err != nil {
		return nil, fmt.Errorf("POST %s: read %s: %w", path, filename, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("POST %s: build form: %w", path, err)
	}

	opts := requestOptions{
		method:  http.MethodPost,
		headers: map[string]string{"Content-Type": mw.FormDataContentType()},
		body:    &body,
	}

	var out models.Resume
	if err := c.do(ctx, path, opts, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListUserResumes(ctx context.Context, userID int64) ([]models.Resume, error) {
	var out []models.Resume
	if err := c.doJSON(ctx, http.MethodGet, "/resumes/user/"+strconv.FormatInt(userID, 10), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetResume(ctx context.Context, resumeID int64) (*models.Resume, error) {
	var out models.Resume
	if err := c.doJSON(ctx, http.MethodGet, "/resumes/"+strconv.FormatInt(resumeID, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteResume(ctx context.Context, resumeID int64) (*models.MessageResponse, error) {
	var out models.MessageResponse
	if err := c.doJSON(ctx, http.MethodDelete, "/resumes/"+strconv.FormatInt(resumeID, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
