package services

import (
	"context"
	"io"
	"sync"

	"github.com/dmitrijs2005/jobpilot/internal/client/client"
	"github.com/dmitrijs2005/jobpilot/internal/client/models"
)

// fakeClient implements client.Client for unit tests. Unset hooks return
// zero values.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	PingErr error

	CreateUserFn func(models.UserCreate) (*models.User, error)
	GetUserFn    func(int64) (*models.User, error)
	UpdateUserFn func(int64, models.UserUpdate) (*models.User, error)

	UploadFn       func(int64, string, []byte) (*models.Resume, error)
	ListResumesFn  func(int64) ([]models.Resume, error)
	DeleteResumeFn func(int64) (*models.MessageResponse, error)

	ListApplicationsFn  func(context.Context, int64) ([]models.JobApplication, error)
	ListNotificationsFn func(context.Context, int64) ([]models.Notification, error)
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) Ping(context.Context) error {
	f.record("Ping")
	return f.PingErr
}

func (f *fakeClient) CreateUser(_ context.Context, u models.UserCreate) (*models.User, error) {
	f.record("CreateUser")
	if f.CreateUserFn != nil {
		return f.CreateUserFn(u)
	}
	return &models.User{}, nil
}

func (f *fakeClient) GetUser(_ context.Context, id int64) (*models.User, error) {
	f.record("GetUser")
	if f.GetUserFn != nil {
		return f.GetUserFn(id)
	}
	return &models.User{ID: id}, nil
}

func (f *fakeClient) UpdateUser(_ context.Context, id int64, u models.UserUpdate) (*models.User, error) {
	f.record("UpdateUser")
	if f.UpdateUserFn != nil {
		return f.UpdateUserFn(id, u)
	}
	return &models.User{ID: id}, nil
}

func (f *fakeClient) UploadResume(_ context.Context, userID int64, filename string, r io.Reader) (*models.Resume, error) {
	f.record("UploadResume")
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if f.UploadFn != nil {
		return f.UploadFn(userID, filename, data)
	}
	return &models.Resume{Filename: filename}, nil
}

func (f *fakeClient) ListUserResumes(_ context.Context, userID int64) ([]models.Resume, error) {
	f.record("ListUserResumes")
	if f.ListResumesFn != nil {
		return f.ListResumesFn(userID)
	}
	return nil, nil
}

func (f *fakeClient) GetResume(_ context.Context, id int64) (*models.Resume, error) {
	f.record("GetResume")
	return &models.Resume{ID: id}, nil
}

func (f *fakeClient) DeleteResume(_ context.Context, id int64) (*models.MessageResponse, error) {
	f.record("DeleteResume")
	if f.DeleteResumeFn != nil {
		return f.DeleteResumeFn(id)
	}
	return &models.MessageResponse{Message: "deleted"}, nil
}

func (f *fakeClient) SearchJobs(context.Context, models.JobSearchRequest) ([]models.Job, error) {
	f.record("SearchJobs")
	return nil, nil
}

func (f *fakeClient) ApplyToJobs(context.Context, int64, models.ApplyRequest) (*models.ApplyResponse, error) {
	f.record("ApplyToJobs")
	return &models.ApplyResponse{}, nil
}

func (f *fakeClient) ListApplications(ctx context.Context, userID int64) ([]models.JobApplication, error) {
	f.record("ListApplications")
	if f.ListApplicationsFn != nil {
		return f.ListApplicationsFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeClient) SendNotification(context.Context, models.NotificationRequest) (*models.Notification, error) {
	f.record("SendNotification")
	return &models.Notification{}, nil
}

func (f *fakeClient) ListNotifications(ctx context.Context, userID int64) ([]models.Notification, error) {
	f.record("ListNotifications")
	if f.ListNotificationsFn != nil {
		return f.ListNotificationsFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeClient) SetupWebhook(context.Context) (*models.MessageResponse, error) {
	f.record("SetupWebhook")
	return &models.MessageResponse{}, nil
}

func (f *fakeClient) DeleteWebhook(context.Context) (*models.MessageResponse, error) {
	f.record("DeleteWebhook")
	return &models.MessageResponse{}, nil
}
