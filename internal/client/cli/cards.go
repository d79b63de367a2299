package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/jobpilot/internal/client/models"
	"github.com/dmitrijs2005/jobpilot/internal/client/services"
	"github.com/dmitrijs2005/jobpilot/internal/format"
	"github.com/olekukonko/tablewriter"
)

const (
	cardSkills      = 4
	descriptionRune = 200
)

type labels struct {
	active, uploaded, experience, skills, salary, match  string
	applied, emails, response, sent, pending, undelivered string
	noResumes, noJobs, noApplications, noNotifications    string
	pendingSync, failedSync, confirmDelete                string
}

var cardLabels = map[string]labels{
	format.LocaleRU: {
		active: "Активное", uploaded: "Загружено", experience: "опыта", skills: "Навыки",
		salary: "Зарплата", match: "Соответствие",
		applied: "Подана", emails: "Писем отправлено", response: "Есть ответ",
		sent: "отправлено", pending: "ожидает", undelivered: "не доставлено",
		noResumes: "Резюме не загружены", noJobs: "Вакансии не найдены",
		noApplications: "Заявок нет", noNotifications: "Уведомлений нет",
		pendingSync: "сохраняется…", failedSync: "ошибка",
		confirmDelete: "Вы уверены, что хотите удалить это резюме?",
	},
	format.LocaleEN: {
		active: "Active", uploaded: "Uploaded", experience: "of experience", skills: "Skills",
		salary: "Salary", match: "Match",
		applied: "Applied", emails: "Emails sent", response: "Response received",
		sent: "sent", pending: "pending", undelivered: "not delivered",
		noResumes: "No resumes uploaded", noJobs: "No jobs found",
		noApplications: "No applications", noNotifications: "No notifications",
		pendingSync: "saving…", failedSync: "failed",
		confirmDelete: "Are you sure you want to delete this resume?",
	},
}

func (a *App) labels() labels {
	return cardLabels[a.fmt.Locale()]
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (a *App) printUser(w io.Writer, u *models.User) {
	fmt.Fprintf(w, "#%d %s <%s>\n", u.ID, u.FullName, u.Email)
	if chat := deref(u.TelegramChatID); chat != "" {
		fmt.Fprintf(w, "   Telegram: %s\n", chat)
	}
	if !u.IsActive {
		fmt.Fprintln(w, "   (inactive)")
	}
}

func (a *App) printResume(w io.Writer, e services.BoardEntry) {
	l := a.labels()
	r := e.Resume

	head := fmt.Sprintf("#%d %s", r.ID, r.Filename)
	if e.Active {
		head += " [" + l.active + "]"
	}
	switch e.State {
	case services.StatePending:
		head += " (" + l.pendingSync + ")"
	case services.StateFailed:
		head += fmt.Sprintf(" (%s: %v)", l.failedSync, e.Err)
	}
	fmt.Fprintln(w, head)

	if title := deref(r.PositionTitle); title != "" {
		fmt.Fprintf(w, "   %s\n", title)
	}

	var meta []string
	if r.ExperienceYears != nil {
		meta = append(meta, a.fmt.ExperienceYears(*r.ExperienceYears)+" "+l.experience)
	}
	if loc := deref(r.Location); loc != "" {
		meta = append(meta, loc)
	}
	if len(meta) > 0 {
		fmt.Fprintf(w, "   %s\n", strings.Join(meta, " · "))
	}

	if len(r.Skills) > 0 {
		fmt.Fprintf(w, "   %s: %s\n", l.skills, format.Skills(r.Skills, cardSkills))
	}
	if !r.CreatedAt.IsZero() {
		fmt.Fprintf(w, "   %s %s\n", l.uploaded, a.fmt.Date(r.CreatedAt.String()))
	}
}

func (a *App) printResumes(w io.Writer, entries []services.BoardEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, a.labels().noResumes)
		return
	}
	for _, e := range entries {
		a.printResume(w, e)
	}
}

func (a *App) printJob(w io.Writer, j models.Job) {
	l := a.labels()

	band := format.Band(j.MatchScore)
	fmt.Fprintf(w, "#%d %s, %s\n", j.ID, j.Title, j.CompanyName)
	fmt.Fprintf(w, "   %s: %s\n", l.salary, a.fmt.Salary(j.SalaryFrom, j.SalaryTo, j.Currency))
	fmt.Fprintf(w, "   %s: %s (%s)\n", l.match, a.fmt.Percent(j.MatchScore), band)
	if loc := deref(j.Location); loc != "" {
		fmt.Fprintf(w, "   %s\n", loc)
	}
	if desc := format.PlainText(deref(j.Description)); desc != "" {
		fmt.Fprintf(w, "   %s\n", format.Truncate(desc, descriptionRune))
	}
	if j.URL != "" {
		fmt.Fprintf(w, "   %s\n", j.URL)
	}
}

func (a *App) printJobs(w io.Writer, jobs []models.Job) {
	if len(jobs) == 0 {
		fmt.Fprintln(w, a.labels().noJobs)
		return
	}
	for _, j := range jobs {
		a.printJob(w, j)
	}
}

func (a *App) printApplications(w io.Writer, apps []models.JobApplication) {
	l := a.labels()
	if len(apps) == 0 {
		fmt.Fprintln(w, l.noApplications)
		return
	}

	t := newTable(w)
	for _, app := range apps {
		status := l.pending
		if app.Status == models.ApplicationStatusSent {
			status = l.sent
		}
		response := ""
		if app.ResponseReceived {
			response = l.response
		}
		t.Append([]string{
			fmt.Sprintf("#%d", app.ID), app.Job.Title, app.Job.CompanyName, status,
			l.applied + " " + a.fmt.Date(app.AppliedAt.String()),
			fmt.Sprintf("%s: %d", l.emails, app.EmailsSentCount), response,
		})
	}
	t.Render()
}

func (a *App) printApplyResponse(w io.Writer, resp *models.ApplyResponse) {
	fmt.Fprintln(w, resp.Message)
	for _, r := range resp.Results {
		line := fmt.Sprintf("   #%d %s: %s", r.JobID, r.Status, r.Message)
		if r.EmailsSent != nil {
			line += fmt.Sprintf(" (%s: %d)", a.labels().emails, *r.EmailsSent)
		}
		fmt.Fprintln(w, line)
	}
}

func (a *App) printNotifications(w io.Writer, ns []models.Notification) {
	l := a.labels()
	if len(ns) == 0 {
		fmt.Fprintln(w, l.noNotifications)
		return
	}
	for _, n := range ns {
		head := fmt.Sprintf("#%d [%s] %s", n.ID, n.NotificationType, n.Title)
		if !n.IsSent {
			head += " (" + l.undelivered + ")"
		}
		fmt.Fprintln(w, head)
		if n.Message != "" {
			fmt.Fprintf(w, "   %s\n", n.Message)
		}
		if !n.CreatedAt.IsZero() {
			fmt.Fprintf(w, "   %s\n", a.fmt.Date(n.CreatedAt.String()))
		}
	}
}

func (a *App) printOverview(w io.Writer, ov *services.Overview) {
	a.printUser(w, ov.User)
	s := ov.Stats()

	t := newTable(w)
	t.AppendBulk([][]string{
		{"resumes", strconv.Itoa(s.Resumes)},
		{"applications", strconv.Itoa(s.Applications)},
		{"  sent", strconv.Itoa(s.Sent)},
		{"  responses", strconv.Itoa(s.ResponsesReceived)},
		{"notifications", strconv.Itoa(s.Notifications)},
		{"  undelivered", strconv.Itoa(s.Undelivered)},
	})
	t.Render()
}

// newTable returns a borderless table with two-space column gaps.
func newTable(w io.Writer) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetAutoWrapText(false)
	t.SetAutoFormatHeaders(false)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.SetBorder(false)
	t.SetHeaderLine(false)
	t.SetRowSeparator("")
	t.SetColumnSeparator("")
	t.SetCenterSeparator("")
	t.SetTablePadding("  ")
	t.SetNoWhiteSpace(true)
	return t
}
