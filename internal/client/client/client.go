package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/jobpilot/internal/client/models"
)

type Client interface {
	Ping(ctx context.Context) error

	CreateUser(ctx context.Context, user models.UserCreate) (*models.User, error)
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (*models.User, error)

	UploadResume(ctx context.Context, userID int64, filename string, r io.Reader) (*models.Resume, error)
	ListUserResumes(ctx context.Context, userID int64) ([]models.Resume, error)
	GetResume(ctx context.Context, resumeID int64) (*models.Resume, error)
	DeleteResume(ctx context.Context, resumeID int64) (*models.MessageResponse, error)

	SearchJobs(ctx context.Context, req models.JobSearchRequest) ([]models.Job, error)
	ApplyToJobs(ctx context.Context, userID int64, req models.ApplyRequest) (*models.ApplyResponse, error)
	ListApplications(ctx context.Context, userID int64) ([]models.JobApplication, error)

	SendNotification(ctx context.Context, req models.NotificationRequest) (*models.Notification, error)
	ListNotifications(ctx context.Context, userID int64) ([]models.Notification, error)
	SetupWebhook(ctx context.Context) (*models.MessageResponse, error)
	DeleteWebhook(ctx context.Context) (*models.MessageResponse, error)
}

var _ Client = (*HTTPClient)(nil)
