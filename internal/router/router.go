package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Prathapkumar-67/aptitude-website/internal/aiquiz"
	"github.com/Prathapkumar-67/aptitude-website/internal/auth"
	"github.com/Prathapkumar-67/aptitude-website/internal/lesson"
	"github.com/Prathapkumar-67/aptitude-website/internal/middlewares"
	"github.com/Prathapkumar-67/aptitude-website/internal/notification"
	"github.com/Prathapkumar-67/aptitude-website/internal/practice"
	"github.com/Prathapkumar-67/aptitude-website/internal/question"
	"github.com/Prathapkumar-67/aptitude-website/internal/stats"
	"github.com/Prathapkumar-67/aptitude-website/internal/streak"
	"github.com/Prathapkumar-67/aptitude-website/internal/subtopic"
	"github.com/Prathapkumar-67/aptitude-website/internal/topic"
	"github.com/Prathapkumar-67/aptitude-website/internal/user"
)

type RouterConfig struct {
	UserHandler         *user.Handler
	TopicHandler        *topic.Handler
	SubtopicHandler     *subtopic.Handler
	QuestionHandler     *question.Handler
	LessonHandler       *lesson.Handler
	PracticeHandler     *practice.Handler
	StreakHandler       *streak.Handler
	NotificationHandler *notification.Handler
	StatsHandler        *stats.Handler
	AIQuizHandler       *aiquiz.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/google", cfg.UserHandler.GoogleLogin)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/topics", topic.Routes(cfg.TopicHandler))
		r.Mount("/subtopics", subtopic.Routes(cfg.SubtopicHandler))
		r.Mount("/questions", question.Routes(cfg.QuestionHandler))
		r.Mount("/lessons", lesson.Routes(cfg.LessonHandler))
		r.Mount("/practice", practice.Routes(cfg.PracticeHandler))
		r.Mount("/streaks", streak.Routes(cfg.StreakHandler))
		r.Mount("/notifications", notification.Routes(cfg.NotificationHandler))
		r.Mount("/stats", stats.Routes(cfg.StatsHandler))
		r.Mount("/ai-quiz", aiquiz.Routes(cfg.AIQuizHandler))

		r.Get("/topics/{topicID}/subtopics", cfg.SubtopicHandler.ListByTopic)
		r.Get("/topics/{topicID}/overview", cfg.SubtopicHandler.Overview)
		r.Get("/subtopics/{subtopicID}/questions", cfg.QuestionHandler.ListBySubtopic)
	})

	return r
}
