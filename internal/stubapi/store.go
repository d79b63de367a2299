package stubapi

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobpilot/internal/client/models"
	"github.com/dmitrijs2005/jobpilot/internal/common"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type userRecord struct {
	models.User
	emailPassword string
}

type resumeRecord struct {
	models.Resume
	userID int64
}

type jobRecord struct {
	models.Job
	hrEmails []string
}

type applicationRecord struct {
	models.JobApplication
	userID   int64
	jobID    int64
	resumeID int64
}

type notificationRecord struct {
	models.Notification
	userID int64
}

// Store is the in-memory state behind the stub backend.
type Store struct {
	mu  sync.Mutex
	now func() time.Time

	ids           map[string]int64
	users         map[int64]*userRecord
	resumes       []*resumeRecord
	jobs          []*jobRecord
	applications  []*applicationRecord
	notifications []*notificationRecord
	outbox        []tgbotapi.MessageConfig
	webhook       bool
}

type StoreOption func(*Store)

// WithClock replaces time.Now for timestamps.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// NewStore returns an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{now: time.Now, ids: make(map[string]int64), users: make(map[int64]*userRecord)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// id issues the next id of kind. Each kind counts from 1.
func (s *Store) id(kind string) int64 {
	s.ids[kind]++
	return s.ids[kind]
}

func (s *Store) stamp() models.Timestamp {
	return models.NewTimestamp(s.now().UTC())
}

// CreateUser registers a user. E-mails are unique.
func (s *Store) CreateUser(in models.UserCreate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, in.Email) {
			return models.User{}, common.ErrAlreadyExists
		}
	}

	u := &userRecord{
		User: models.User{
			ID:             s.id("user"),
			Email:          in.Email,
			FullName:       in.FullName,
			TelegramChatID: in.TelegramChatID,
			IsActive:       true,
		},
	}
	if in.EmailPassword != nil {
		u.emailPassword = *in.EmailPassword
	}
	s.users[u.ID] = u
	return u.User, nil
}

func (s *Store) GetUser(id int64) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, common.ErrNotFound
	}
	return u.User, nil
}

// UpdateUser applies the non-nil fields of upd.
func (s *Store) UpdateUser(id int64, upd models.UserUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, common.ErrNotFound
	}
	if upd.Email != nil {
		for _, other := range s.users {
			if other.ID != id && strings.EqualFold(other.Email, *upd.Email) {
				return models.User{}, common.ErrAlreadyExists
			}
		}
		u.Email = *upd.Email
	}
	if upd.FullName != nil {
		u.FullName = *upd.FullName
	}
	if upd.TelegramChatID != nil {
		u.TelegramChatID = upd.TelegramChatID
	}
	if upd.IsActive != nil {
		u.IsActive = *upd.IsActive
	}
	if upd.EmailPassword != nil && *upd.EmailPassword != "" {
		u.emailPassword = *upd.EmailPassword
	}
	return u.User, nil
}

// AddResume stores a resume for userID. Extracted fields are taken from r.
func (s *Store) AddResume(userID int64, r models.Resume) models.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = s.id("resume")
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.stamp()
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	s.resumes = append(s.resumes, &resumeRecord{Resume: r, userID: userID})
	return r
}

func (s *Store) ListResumes(userID int64) []models.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Resume, 0)
	for _, r := range s.resumes {
		if r.userID == userID {
			out = append(out, r.Resume)
		}
	}
	return out
}

func (s *Store) GetResume(id int64) (models.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r := s.findResume(id); r != nil {
		return r.Resume, nil
	}
	return models.Resume{}, common.ErrNotFound
}

func (s *Store) findResume(id int64) *resumeRecord {
	for _, r := range s.resumes {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (s *Store) DeleteResume(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.resumes, func(r *resumeRecord) bool { return r.ID == id })
	if i < 0 {
		return common.ErrNotFound
	}
	s.resumes = slices.Delete(s.resumes, i, i+1)
	return nil
}

// AddJob stores a vacancy. hrEmails are the addresses applications go to.
func (s *Store) AddJob(j models.Job, hrEmails ...string) models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	j.ID = s.id("job")
	if j.Currency == "" {
		j.Currency = common.DefaultCurrency
	}
	if j.CreatedAt.IsZero() {
		j.CreatedAt = s.stamp()
	}
	s.jobs = append(s.jobs, &jobRecord{Job: j, hrEmails: hrEmails})
	return j
}

// ErrNoResume is returned by SearchJobs for users without a resume.
var ErrNoResume = errors.New("user has no resume")

// SearchJobs filters the stored vacancies. A job matches when any keyword
// occurs in its title or description, its location contains the requested
// one, and its upper salary bound (if any) reaches salary_from. Results are
// ordered by match score, best first.
func (s *Store) SearchJobs(req models.JobSearchRequest) ([]models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !slices.ContainsFunc(s.resumes, func(r *resumeRecord) bool { return r.userID == req.UserID }) {
		return nil, ErrNoResume
	}

	out := make([]models.Job, 0)
	for _, j := range s.jobs {
		if matchesSearch(j.Job, req) {
			out = append(out, j.Job)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Job) int {
		return cmp.Compare(score(b), score(a))
	})
	return out, nil
}

func score(j models.Job) float64 {
	if j.MatchScore == nil {
		return 0
	}
	return *j.MatchScore
}

func matchesSearch(j models.Job, req models.JobSearchRequest) bool {
	if len(req.Keywords) > 0 {
		text := strings.ToLower(j.Title + " " + deref(j.Description))
		if !slices.ContainsFunc(req.Keywords, func(k string) bool {
			return strings.Contains(text, strings.ToLower(k))
		}) {
			return false
		}
	}
	if req.Location != nil && *req.Location != "" {
		if !strings.Contains(strings.ToLower(deref(j.Location)), strings.ToLower(*req.Location)) {
			return false
		}
	}
	if req.SalaryFrom != nil && j.SalaryTo != nil && *j.SalaryTo != 0 && *j.SalaryTo < *req.SalaryFrom {
		return false
	}
	return true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Apply records applications of userID to the given jobs. Unknown jobs are
// skipped; jobs applied to before yield an already_applied result. E-mails
// count as sent when the user left a mailbox password and the job lists HR
// contacts.
func (s *Store) Apply(userID int64, req models.ApplyRequest) (models.ApplyResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok || s.findResume(req.ResumeID) == nil {
		return models.ApplyResponse{}, common.ErrNotFound
	}

	resp := models.ApplyResponse{
		Success: true,
		Message: fmt.Sprintf("Обработано %d вакансий", len(req.JobIDs)),
		Results: make([]models.ApplyResult, 0, len(req.JobIDs)),
	}

	for _, jobID := range req.JobIDs {
		j := s.findJob(jobID)
		if j == nil {
			continue
		}

		if s.hasApplied(userID, jobID) {
			resp.Results = append(resp.Results, models.ApplyResult{
				JobID:   jobID,
				Status:  models.ApplyStatusAlreadyApplied,
				Message: fmt.Sprintf("Заявка на вакансию '%s' уже подана", j.Title),
			})
			continue
		}

		sent := 0
		if u.emailPassword != "" {
			sent = len(j.hrEmails)
		}
		status := models.ApplicationStatusPending
		if sent > 0 {
			status = models.ApplicationStatusSent
		}

		s.applications = append(s.applications, &applicationRecord{
			JobApplication: models.JobApplication{
				ID:              s.id("application"),
				Job:             models.Job{Title: j.Title, CompanyName: j.CompanyName, URL: j.URL},
				Status:          status,
				AppliedAt:       s.stamp(),
				EmailsSentCount: sent,
			},
			userID:   userID,
			jobID:    jobID,
			resumeID: req.ResumeID,
		})
		resp.Results = append(resp.Results, models.ApplyResult{
			JobID:      jobID,
			Status:     models.ApplyStatusSuccess,
			Message:    fmt.Sprintf("Заявка на '%s' отправлена", j.Title),
			EmailsSent: &sent,
		})
	}
	return resp, nil
}

func (s *Store) findJob(id int64) *jobRecord {
	for _, j := range s.jobs {
		if j.ID == id {
			return j
		}
	}
	return nil
}

func (s *Store) hasApplied(userID, jobID int64) bool {
	for _, a := range s.applications {
		if a.userID == userID && a.jobID == jobID {
			return true
		}
	}
	return false
}

func (s *Store) Applications(userID int64) []models.JobApplication {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.JobApplication, 0)
	for _, a := range s.applications {
		if a.userID == userID {
			out = append(out, a.JobApplication)
		}
	}
	return out
}

// Notify stores a notification and, when the user has a numeric Telegram
// chat id, queues the Markdown message the bot would send.
func (s *Store) Notify(req models.NotificationRequest) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := &notificationRecord{
		Notification: models.Notification{
			ID:               s.id("notification"),
			NotificationType: req.NotificationType,
			Title:            req.Title,
			Message:          req.Message,
			CreatedAt:        s.stamp(),
		},
		userID: req.UserID,
	}

	if chatID, ok := s.chatID(req.UserID); ok {
		msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("*%s*\n\n%s", req.Title, req.Message))
		msg.ParseMode = tgbotapi.ModeMarkdown
		if req.ButtonsData != nil && len(req.ButtonsData.Buttons) > 0 {
			rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(req.ButtonsData.Buttons))
			for _, b := range req.ButtonsData.Buttons {
				rows = append(rows, tgbotapi.NewInlineKeyboardRow(b))
			}
			msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
		}
		s.outbox = append(s.outbox, msg)
		n.IsSent = true
	}

	s.notifications = append(s.notifications, n)
	return n.Notification
}

func (s *Store) chatID(userID int64) (int64, bool) {
	u, ok := s.users[userID]
	if !ok || u.TelegramChatID == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(*u.TelegramChatID, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Notifications returns userID's notifications, newest first.
func (s *Store) Notifications(userID int64) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Notification, 0)
	for _, n := range s.notifications {
		if n.userID == userID {
			out = append(out, n.Notification)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Notification) int {
		if c := b.CreatedAt.Compare(a.CreatedAt.Time); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return out
}

// Reply queues a plain bot message to chatID.
func (s *Store) Reply(chatID int64, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	s.outbox = append(s.outbox, msg)
}

// Outbox returns the bot messages queued so far.
func (s *Store) Outbox() []tgbotapi.MessageConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.outbox)
}

func (s *Store) SetWebhook(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.webhook = on
}

func (s *Store) Webhook() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.webhook
}

// UserByChat finds the user bound to a Telegram chat id.
func (s *Store) UserByChat(chatID int64) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	want := strconv.FormatInt(chatID, 10)
	for _, u := range s.users {
		if u.TelegramChatID != nil && *u.TelegramChatID == want {
			return u.User, true
		}
	}
	return models.User{}, false
}
