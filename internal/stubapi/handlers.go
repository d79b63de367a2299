package stubapi

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/jobpilot/internal/client/models"
	"github.com/dmitrijs2005/jobpilot/internal/common"
	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const maxUploadSize = 10 << 20

var resumeExtensions = map[string]bool{".pdf": true, ".doc": true, ".docx": true, ".txt": true}

func abortDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}

// abortInvalid answers 422 with a single validation item.
func abortInvalid(c *gin.Context, loc []string, msg string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
		"detail": []gin.H{{"loc": loc, "msg": msg, "type": "value_error"}},
	})
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		abortInvalid(c, []string{"path", name}, "value is not a valid integer")
		return 0, false
	}
	return id, true
}

func bindBody(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		_ = c.Error(err)
		abortInvalid(c, []string{"body"}, err.Error())
		return false
	}
	return true
}

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "jobpilot stub API is running"})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) createUser(c *gin.Context) {
	var in models.UserCreate
	if !bindBody(c, &in) {
		return
	}
	if strings.TrimSpace(in.Email) == "" {
		abortInvalid(c, []string{"body", "email"}, "field required")
		return
	}
	if strings.TrimSpace(in.FullName) == "" {
		abortInvalid(c, []string{"body", "full_name"}, "field required")
		return
	}

	u, err := s.store.CreateUser(in)
	if errors.Is(err, common.ErrAlreadyExists) {
		abortDetail(c, http.StatusBadRequest, "Пользователь с таким email уже существует")
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *Server) getUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	u, err := s.store.GetUser(id)
	if err != nil {
		abortDetail(c, http.StatusNotFound, "Пользователь не найден")
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *Server) updateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var upd models.UserUpdate
	if !bindBody(c, &upd) {
		return
	}

	u, err := s.store.UpdateUser(id, upd)
	switch {
	case errors.Is(err, common.ErrNotFound):
		abortDetail(c, http.StatusNotFound, "Пользователь не найден")
	case errors.Is(err, common.ErrAlreadyExists):
		abortDetail(c, http.StatusBadRequest, "Пользователь с таким email уже существует")
	default:
		c.JSON(http.StatusOK, u)
	}
}

func (s *Server) uploadResume(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, err := s.store.GetUser(userID); err != nil {
		abortDetail(c, http.StatusNotFound, "Пользователь не найден")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)
	fh, err := c.FormFile("file")
	if err != nil {
		_ = c.Error(err)
		abortInvalid(c, []string{"body", "file"}, "field required")
		return
	}
	if !resumeExtensions[strings.ToLower(filepath.Ext(fh.Filename))] {
		abortDetail(c, http.StatusBadRequest, "Поддерживаются только файлы: PDF, DOC, DOCX, TXT")
		return
	}

	r := s.store.AddResume(userID, models.Resume{Filename: filepath.Base(fh.Filename)})
	c.JSON(http.StatusOK, r)
}

func (s *Server) listResumes(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.store.ListResumes(userID))
}

func (s *Server) getResume(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	r, err := s.store.GetResume(id)
	if err != nil {
		abortDetail(c, http.StatusNotFound, "Резюме не найдено")
		return
	}
	c.JSON(http.StatusOK, r)
}

func (s *Server) deleteResume(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeleteResume(id); err != nil {
		abortDetail(c, http.StatusNotFound, "Резюме не найдено")
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Резюме успешно удалено"})
}

func (s *Server) searchJobs(c *gin.Context) {
	var req models.JobSearchRequest
	if !bindBody(c, &req) {
		return
	}
	if req.UserID == 0 {
		abortInvalid(c, []string{"body", "user_id"}, "field required")
		return
	}

	jobs, err := s.store.SearchJobs(req)
	if errors.Is(err, ErrNoResume) {
		abortDetail(c, http.StatusBadRequest, "У пользователя нет загруженного резюме")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (s *Server) applyToJobs(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		abortInvalid(c, []string{"query", "user_id"}, "field required")
		return
	}
	var req models.ApplyRequest
	if !bindBody(c, &req) {
		return
	}

	resp, err := s.store.Apply(userID, req)
	if err != nil {
		abortDetail(c, http.StatusNotFound, "Пользователь или резюме не найдены")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) listApplications(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.store.Applications(userID))
}

func (s *Server) sendNotification(c *gin.Context) {
	var req models.NotificationRequest
	if !bindBody(c, &req) {
		return
	}
	if req.UserID == 0 {
		abortInvalid(c, []string{"body", "user_id"}, "field required")
		return
	}
	if req.NotificationType == "" {
		abortInvalid(c, []string{"body", "notification_type"}, "field required")
		return
	}

	n := s.store.Notify(req)
	s.log.Debug(c.Request.Context(), "notification stored", "user_id", req.UserID, "sent", n.IsSent)
	c.JSON(http.StatusOK, n)
}

func (s *Server) listNotifications(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.store.Notifications(userID))
}

func (s *Server) setupWebhook(c *gin.Context) {
	s.store.SetWebhook(true)
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Webhook успешно настроен"})
}

func (s *Server) deleteWebhook(c *gin.Context) {
	s.store.SetWebhook(false)
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Webhook успешно удален"})
}

const (
	startText = "Привет! Я помогу найти работу и откликнуться на вакансии.\n\nИспользуйте /help, чтобы увидеть команды."
	helpText  = "*Команды*\n/start - начало работы\n/status - статус заявок\n/help - эта справка"
)

// telegramUpdate accepts a bot update and queues the reply a real bot
// would send. Updates without a chat are acknowledged and ignored.
func (s *Server) telegramUpdate(c *gin.Context) {
	var upd tgbotapi.Update
	if !bindBody(c, &upd) {
		return
	}

	switch {
	case upd.Message != nil && upd.Message.Chat != nil && upd.Message.IsCommand():
		chatID := upd.Message.Chat.ID
		switch upd.Message.Command() {
		case "start":
			s.store.Reply(chatID, startText)
		case "help":
			s.store.Reply(chatID, helpText)
		case "status":
			s.store.Reply(chatID, s.statusText(chatID))
		}
	case upd.CallbackQuery != nil && upd.CallbackQuery.Message != nil && upd.CallbackQuery.Message.Chat != nil:
		s.store.Reply(upd.CallbackQuery.Message.Chat.ID, "Принято: "+upd.CallbackQuery.Data)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) statusText(chatID int64) string {
	u, ok := s.store.UserByChat(chatID)
	if !ok {
		return "Пользователь не найден. Зарегистрируйтесь через CLI."
	}
	apps := s.store.Applications(u.ID)
	sent := 0
	for _, a := range apps {
		if a.Status == models.ApplicationStatusSent {
			sent++
		}
	}
	return fmt.Sprintf("*Статус заявок*\nВсего: %d\nОтправлено: %d", len(apps), sent)
}
