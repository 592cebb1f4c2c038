// Package seed holds the fixed demo data every process starts from.
package seed

import (
	"time"

	"protrain-backend-go/internal/models"
)

const (
	holidayNoticeImage = "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?auto=format&fit=crop&q=80&w=600"
	joaoPhoto          = "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?auto=format&fit=crop&q=80&w=200"
	mariaPhoto         = "https://images.unsplash.com/photo-1544005313-94ddf0286df2?auto=format&fit=crop&q=80&w=200"
	mariaPostPhoto     = "https://images.unsplash.com/photo-1544005313-94ddf0286df2?auto=format&fit=crop&q=80&w=100"
	bernardoPhoto      = "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&q=80&w=200"
)

// Collections builds a fresh copy of the demo data, stamping notices and
// posts with now.
func Collections(now time.Time) models.Collections {
	now = now.UTC()
	return models.Collections{
		Students: Students(),
		Posts: []models.Post{
			{
				ID:        "p1",
				UserID:    "2",
				UserName:  "Maria Clara",
				UserPhoto: mariaPostPhoto,
				Content:   "Hoje o treino de pernas foi intenso! Consegui bater o meu recorde pessoal nos 5km. 💪🔥",
				Likes:     []string{"1"},
				Comments:  []models.Comment{},
				Status:    models.PostApproved,
				Timestamp: now,
			},
		},
		Notices: []models.Notice{
			{
				ID:        "n1",
				Title:     "Alteração de Horário - Feriado",
				Content:   "Atenção atletas! Devido ao feriado municipal, o treino de quinta-feira será antecipado para as 18:30 no Estádio Municipal.",
				ImageURL:  holidayNoticeImage,
				Timestamp: now,
				Priority:  models.PriorityHigh,
			},
		},
		Messages: []models.ContactMessage{},
	}
}

func Students() []models.Student {
	return []models.Student{
		{
			ID:         "1",
			Name:       "João Silva",
			Age:        28,
			PhotoURL:   joaoPhoto,
			StartYear:  2018,
			Location:   models.LocationAlcanena,
			Attendance: []string{"2023-11-01", "2023-11-03", "2023-11-05", "2025-02-10", "2025-02-12"},
			Evolution: []models.TrainingLog{
				{ID: "l1", Date: "2023-10-01", Exercise: "Corrida 5km", Result: "22:30"},
			},
		},
		{
			ID:         "2",
			Name:       "Maria Clara",
			Age:        32,
			PhotoURL:   mariaPhoto,
			StartYear:  2021,
			Location:   models.LocationMinde,
			Attendance: []string{"2023-10-05", "2023-11-05", "2025-02-11"},
			Evolution: []models.TrainingLog{
				{ID: "l2", Date: "2023-10-05", Exercise: "Caminhada 10km", Result: "1h15m"},
			},
		},
		{
			ID:         "3",
			Name:       "Bernardo Costa",
			Age:        24,
			PhotoURL:   bernardoPhoto,
			StartYear:  2022,
			Location:   models.LocationAlcanena,
			Attendance: []string{"2025-02-10"},
			Evolution:  []models.TrainingLog{},
		},
	}
}
