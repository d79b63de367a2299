package stubapi

import (
	"github.com/dmitrijs2005/jobpilot/internal/client/models"
)

func ptr[T any](v T) *T { return &v }

func seedTimestamp(raw string) models.Timestamp {
	ts, err := models.ParseTimestamp(raw)
	if err != nil {
		panic(err)
	}
	return ts
}

// Seed fills s with the demo user, resumes and vacancies.
func Seed(s *Store) {
	u, err := s.CreateUser(models.UserCreate{
		Email:          "ivan.ivanov@example.com",
		FullName:       "Иван Иванов",
		TelegramChatID: ptr("123456789"),
		EmailPassword:  ptr("demo"),
	})
	if err != nil {
		return
	}

	s.AddResume(u.ID, models.Resume{
		Filename:        "Иванов_Иван_Frontend.pdf",
		PositionTitle:   ptr("Frontend Developer"),
		Skills:          []string{"React", "TypeScript", "Node.js", "CSS"},
		ExperienceYears: ptr(3),
		Location:        ptr("Москва"),
		CreatedAt:       seedTimestamp("2024-01-15T10:30:00"),
	})
	s.AddResume(u.ID, models.Resume{
		Filename:        "Иванов_Иван_Fullstack.pdf",
		PositionTitle:   ptr("Fullstack Developer"),
		Skills:          []string{"React", "Python", "PostgreSQL", "Docker"},
		ExperienceYears: ptr(3),
		Location:        ptr("Москва"),
		CreatedAt:       seedTimestamp("2024-01-10T09:00:00"),
	})

	s.AddJob(models.Job{
		Title:       "Frontend Developer (React)",
		CompanyName: "Яндекс",
		Description: ptr("<p>Разработка интерфейсов на <b>React</b> и TypeScript.</p><ul><li>SSR</li><li>Дизайн-система</li></ul>"),
		SalaryFrom:  ptr[int64](180000),
		SalaryTo:    ptr[int64](250000),
		Location:    ptr("Москва"),
		URL:         "https://hh.ru/vacancy/90000001",
		MatchScore:  ptr(0.92),
		LLMAnalysis: ptr("Опыт с React и TypeScript полностью покрывает требования."),
		Platform:    "hh.ru",
	}, "hr@yandex.example")
	s.AddJob(models.Job{
		Title:       "Fullstack разработчик (Python/React)",
		CompanyName: "Т-Банк",
		Description: ptr("<p>FastAPI, PostgreSQL, React. Docker и CI.</p>"),
		SalaryFrom:  ptr[int64](200000),
		SalaryTo:    ptr[int64](300000),
		Location:    ptr("Москва"),
		URL:         "https://hh.ru/vacancy/90000002",
		MatchScore:  ptr(0.78),
		Platform:    "hh.ru",
	}, "talent@tbank.example", "lead@tbank.example")
	s.AddJob(models.Job{
		Title:       "Node.js Developer",
		CompanyName: "Авито",
		Description: ptr("<p>Микросервисы на Node.js и TypeScript.</p>"),
		SalaryFrom:  ptr[int64](220000),
		Location:    ptr("Москва"),
		URL:         "https://hh.ru/vacancy/90000003",
		MatchScore:  ptr(0.65),
		Platform:    "hh.ru",
	})
	s.AddJob(models.Job{
		Title:       "Junior Frontend Developer",
		CompanyName: "Ozon",
		Description: ptr("<p>Vue или React, HTML, CSS.</p>"),
		SalaryTo:    ptr[int64](120000),
		Location:    ptr("Санкт-Петербург"),
		URL:         "https://hh.ru/vacancy/90000004",
		MatchScore:  ptr(0.45),
		Platform:    "hh.ru",
	}, "hr@ozon.example")
	s.AddJob(models.Job{
		Title:       "Go Developer",
		CompanyName: "VK",
		Description: ptr("<p>Высоконагруженные сервисы на Go.</p>"),
		SalaryFrom:  ptr[int64](250000),
		SalaryTo:    ptr[int64](350000),
		Location:    ptr("Москва"),
		URL:         "https://hh.ru/vacancy/90000005",
		Platform:    "hh.ru",
	})
}
