package httpapi

import (
	"net/http"

	"protrain-backend-go/internal/app"
	"protrain-backend-go/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	App    *app.App
	Config config.Config
	Hub    *StateHub
}

func NewServer(a *app.App, cfg config.Config, hub *StateHub) *Server {
	return &Server{
		App:    a,
		Config: cfg,
		Hub:    hub,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Use(RequestLogger)
		api.Get("/state", s.State)

		api.Route("/session", func(sess chi.Router) {
			sess.Get("/", s.CurrentSession)
			sess.Post("/login", s.Login)
			sess.Post("/logout", s.Logout)
		})

		api.Route("/nav", func(nav chi.Router) {
			nav.Post("/back", s.Back)
			nav.Post("/{item}", s.Navigate)
		})
		api.Put("/location/{location}", s.SetLocation)

		api.Route("/students", func(students chi.Router) {
			students.Route("/form", func(form chi.Router) {
				form.Post("/toggle", s.ToggleAddStudentForm)
				form.Put("/draft", s.SetDraft)
				form.Post("/submit", s.SubmitAddStudentForm)
			})
			students.Route("/{studentId}", func(student chi.Router) {
				student.Post("/select", s.SelectStudent)
				student.Post("/photo", s.UpdateStudentPhoto)
				student.Post("/logs", s.AddTrainingLog)
				student.Put("/logs/{logId}", s.UpdateTrainingLog)
				student.Delete("/logs/{logId}", s.RemoveTrainingLog)
				student.Post("/attendance/{date}", s.ToggleAttendance)
			})
		})

		api.Route("/posts", func(posts chi.Router) {
			posts.Post("/", s.CreatePost)
			posts.Post("/{postId}/like", s.ToggleLike)
			posts.Post("/{postId}/comments", s.AddComment)
			posts.Post("/{postId}/approve", s.ApprovePost)
			posts.Delete("/{postId}", s.RejectPost)
		})

		api.Post("/notices", s.AddNotice)
		api.Route("/messages", func(messages chi.Router) {
			messages.Post("/", s.SendContactMessage)
			messages.Delete("/{messageId}", s.DeleteContactMessage)
		})
	})

	r.Get("/ws/state", s.StateSocket)
	r.Handle("/metrics", promhttp.Handler())
	return r
}
