package main

import (
	"context"
	"log"

	"github.com/Nithinrathna/interview-prep/internal/config"
	"github.com/Nithinrathna/interview-prep/internal/handler"
	"github.com/Nithinrathna/interview-prep/internal/llm"
	"github.com/Nithinrathna/interview-prep/internal/middleware"
	"github.com/Nithinrathna/interview-prep/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	// Missing Gemini or Mongo configuration degrades the service instead
	// of killing it; /health reports what is live.
	var generator handler.Generator
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY is not set. Question generation will not work.")
	} else if client, err := llm.NewClient(ctx, cfg.GeminiAPIKey); err != nil {
		log.Printf("[ERROR] Failed to create Gemini client: %v", err)
	} else {
		generator = client
	}

	var history handler.HistoryStore
	if cfg.MongoURI == "" {
		log.Println("Warning: MONGO_URI is not set. History will not be stored.")
	} else if client, err := storage.Connect(ctx, cfg.MongoURI); err != nil {
		log.Printf("MongoDB connection failed: %v", err)
	} else {
		log.Println("MongoDB connection successful")
		history = storage.NewHistoryStore(client.Database(cfg.ResumeDB))
	}

	h := handler.NewResumeHandler(generator, history, cfg.UploadDir)

	router := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	generate := router.Group("/", middleware.GenerationRateLimit())
	{
		generate.POST("/generate-questions", h.GenerateQuestions)
		generate.POST("/generate-answers", h.GenerateAnswers)
	}
	router.GET("/health", h.Health)
	router.GET("/questions-history", h.QuestionsHistory)

	log.Printf("Starting resume-api on %s", cfg.ResumeAddr)
	log.Fatal(router.Run(cfg.ResumeAddr))
}
