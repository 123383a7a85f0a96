package main

import (
	"context"
	"log"

	"github.com/Nithinrathna/interview-prep/internal/auth"
	"github.com/Nithinrathna/interview-prep/internal/config"
	"github.com/Nithinrathna/interview-prep/internal/handler"
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

	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI must be set")
	}
	client, err := storage.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}

	users := storage.NewUserStore(client.Database(cfg.AuthDB))
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Printf("Warning: could not create user indexes: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	h := handler.NewAuthHandler(users, tokens)

	router := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.POST("/signup", h.Signup)
	router.POST("/login", h.Login)
	router.GET("/health", h.Health)

	user := router.Group("/user").Use(middleware.Auth(tokens, users))
	{
		user.GET("/profile", h.Profile)
		user.PUT("/profile", h.UpdateProfile)
		user.POST("/change-password", h.ChangePassword)
	}

	log.Printf("Starting auth-api on %s", cfg.AuthAddr)
	log.Fatal(router.Run(cfg.AuthAddr))
}
