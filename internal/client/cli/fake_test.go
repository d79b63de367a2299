package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/jobpilot/internal/client/client"
	"github.com/dmitrijs2005/jobpilot/internal/client/config"
	"github.com/dmitrijs2005/jobpilot/internal/client/models"
	"github.com/dmitrijs2005/jobpilot/internal/client/source"
	"github.com/dmitrijs2005/jobpilot/internal/logging"
)

func strp(s string) *string { return &s }
func intp(v int) *int       { return &v }
func i64p(v int64) *int64   { return &v }

func notFound(path string) error {
	return &client.StatusError{StatusCode: http.StatusNotFound, Method: http.MethodGet, Path: path, Detail: "not found"}
}

// fakeAPI is an in-memory client.Client that records the requests it gets.
type fakeAPI struct {
	mu sync.Mutex

	pingErr   error
	users     map[int64]*models.User
	resumes   []models.Resume
	jobs      []models.Job
	apps      []models.JobApplication
	notes     []models.Notification
	deleteErr error

	searches  []models.JobSearchRequest
	applies   []models.ApplyRequest
	sent      []models.NotificationRequest
	uploads   []string
	created   []models.UserCreate
	updates   []models.UserUpdate
	deleted   []int64
	webhookOn bool
}

var _ client.Client = (*fakeAPI)(nil)

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		users: map[int64]*models.User{
			1: {ID: 1, Email: "ivan@example.com", FullName: "Иван Иванов", TelegramChatID: strp("42"), IsActive: true},
		},
		resumes: []models.Resume{
			{ID: 1, Filename: "Иванов_Иван_Frontend.pdf", PositionTitle: strp("Frontend Developer"),
				Skills: []string{"React", "TypeScript", "Node.js", "CSS", "HTML", "Git"}, ExperienceYears: intp(3),
				Location: strp("Москва"), CreatedAt: mustTS("2024-01-15T10:00:00")},
			{ID: 2, Filename: "Иванов_Иван_Fullstack.pdf", PositionTitle: strp("Fullstack Developer"),
				Skills: []string{"React", "Python"}, ExperienceYears: intp(3),
				Location: strp("Москва"), CreatedAt: mustTS("2024-01-10T10:00:00")},
		},
		jobs: []models.Job{
			{ID: 7, Title: "Go Developer", CompanyName: "Acme", SalaryFrom: i64p(150000), SalaryTo: i64p(200000),
				Currency: "RUB", URL: "https://hh.ru/vacancy/7", MatchScore: func() *float64 { v := 0.85; return &v }(),
				Description: strp("<p>Build <b>services</b></p><script>x()</script>")},
		},
	}
}

func mustTS(s string) models.Timestamp {
	ts, err := models.ParseTimestamp(s)
	if err != nil {
		panic(err)
	}
	return ts
}

func (f *fakeAPI) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pingErr
}

func (f *fakeAPI) CreateUser(_ context.Context, u models.UserCreate) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, u)
	id := int64(len(f.users) + 1)
	nu := &models.User{ID: id, Email: u.Email, FullName: u.FullName, TelegramChatID: u.TelegramChatID, IsActive: true}
	f.users[id] = nu
	return nu, nil
}

func (f *fakeAPI) GetUser(_ context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, notFound(fmt.Sprintf("/users/%d", id))
	}
	cp := *u
	return &cp, nil
}

func (f *fakeAPI) UpdateUser(_ context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, upd)
	u, ok := f.users[id]
	if !ok {
		return nil, notFound(fmt.Sprintf("/users/%d", id))
	}
	if upd.FullName != nil {
		u.FullName = *upd.FullName
	}
	if upd.IsActive != nil {
		u.IsActive = *upd.IsActive
	}
	cp := *u
	return &cp, nil
}

func (f *fakeAPI) UploadResume(_ context.Context, _ int64, filename string, r io.Reader) (*models.Resume, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, filename+":"+string(body))
	res := models.Resume{ID: int64(100 + len(f.uploads)), Filename: filename, Skills: []string{}}
	f.resumes = append(f.resumes, res)
	return &res, nil
}

func (f *fakeAPI) ListUserResumes(context.Context, int64) ([]models.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Resume(nil), f.resumes...), nil
}

func (f *fakeAPI) GetResume(_ context.Context, id int64) (*models.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.resumes {
		if r.ID == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, notFound(fmt.Sprintf("/resumes/%d", id))
}

func (f *fakeAPI) DeleteResume(_ context.Context, id int64) (*models.MessageResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return &models.MessageResponse{Message: "Резюме успешно удалено"}, nil
}

func (f *fakeAPI) SearchJobs(_ context.Context, req models.JobSearchRequest) ([]models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches = append(f.searches, req)
	return f.jobs, nil
}

func (f *fakeAPI) ApplyToJobs(_ context.Context, _ int64, req models.ApplyRequest) (*models.ApplyResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applies = append(f.applies, req)
	resp := &models.ApplyResponse{Success: true, Message: fmt.Sprintf("Обработано %d вакансий", len(req.JobIDs))}
	for _, id := range req.JobIDs {
		n := 1
		resp.Results = append(resp.Results, models.ApplyResult{JobID: id, Status: models.ApplyStatusSuccess, Message: "ok", EmailsSent: &n})
	}
	return resp, nil
}

func (f *fakeAPI) ListApplications(context.Context, int64) ([]models.JobApplication, error) {
	return f.apps, nil
}

func (f *fakeAPI) SendNotification(_ context.Context, req models.NotificationRequest) (*models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, req)
	return &models.Notification{ID: 9, NotificationType: req.NotificationType, Title: req.Title, Message: req.Message, IsSent: true}, nil
}

func (f *fakeAPI) ListNotifications(context.Context, int64) ([]models.Notification, error) {
	return f.notes, nil
}

func (f *fakeAPI) SetupWebhook(context.Context) (*models.MessageResponse, error) {
	f.webhookOn = true
	return &models.MessageResponse{Message: "Webhook успешно настроен"}, nil
}

func (f *fakeAPI) DeleteWebhook(context.Context) (*models.MessageResponse, error) {
	f.webhookOn = false
	return &models.MessageResponse{Message: "Webhook успешно удален"}, nil
}

// memSource serves documents from memory.
type memSource map[string]string

func (m memSource) Open(_ context.Context, ref string) (*source.Document, error) {
	body, ok := m[ref]
	if !ok {
		return nil, fmt.Errorf("open %s: no such file", ref)
	}
	name := ref[strings.LastIndex(ref, "/")+1:]
	return &source.Document{Name: name, Body: io.NopCloser(strings.NewReader(body))}, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return cfg
}

// newTestApp returns an App over api with the given stdin, plus its output.
func newTestApp(t *testing.T, api client.Client, stdin string) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	app := newApp(testConfig(), api, memSource{}, strings.NewReader(stdin), out, logging.Discard())
	return app, out
}

func withUser(app *App, id int64) *App {
	app.selectUser(id)
	return app
}

func newReader(s string) *bufio.Reader { return bufio.NewReader(strings.NewReader(s)) }
