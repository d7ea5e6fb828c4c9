package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"commentsift/config"
	"commentsift/internal/analyzer"
	"commentsift/internal/clients"
	"commentsift/internal/handler"
	"commentsift/internal/logging"
	"commentsift/internal/reducer"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg := config.FromEnv()

	openAIClient := clients.GetOpenAIClient()

	analysisHandler := handler.NewAnalysisHandler(
		reducer.New(),
		analyzer.New(openAIClient.Client, analyzer.WithModel(cfg.OpenAIModel)),
	)

	r := gin.Default()

	slog.Info("[API] Allowed origins", "origins", cfg.AllowedOrigins)
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))
	r.Use(handler.RequestID())

	api := r.Group("/api")
	api.GET("/health", analysisHandler.GetHealth)
	api.POST("/analyze-comments", analysisHandler.AnalyzeComments)
	api.POST("/analyze-video", analysisHandler.AnalyzeVideo)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
