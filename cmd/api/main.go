package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	log "github.com/sirupsen/logrus"

	"github.com/Prathapkumar-67/aptitude-website/internal/config"
	"github.com/Prathapkumar-67/aptitude-website/internal/container"
	"github.com/Prathapkumar-67/aptitude-website/internal/router"
)

func main() {
	config.LoadEnv()

	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:         c.UserContainer.Handler,
		TopicHandler:        c.TopicContainer.Handler,
		SubtopicHandler:     c.SubtopicContainer.Handler,
		QuestionHandler:     c.QuestionContainer.Handler,
		LessonHandler:       c.LessonContainer.Handler,
		PracticeHandler:     c.PracticeContainer.Handler,
		StreakHandler:       c.StreakContainer.Handler,
		NotificationHandler: c.NotificationContainer.Handler,
		StatsHandler:        c.StatsContainer.Handler,
		AIQuizHandler:       c.AIQuizContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(httpadapter.New(r).ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Infof("Listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}
