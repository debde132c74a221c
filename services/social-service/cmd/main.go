package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/SocialFeed/pkg/logger"
	"seungpyo.lee/SocialFeed/pkg/token"
	"seungpyo.lee/SocialFeed/services/social-service/internal/config"
	"seungpyo.lee/SocialFeed/services/social-service/internal/database"
	"seungpyo.lee/SocialFeed/services/social-service/internal/handler"
	"seungpyo.lee/SocialFeed/services/social-service/internal/repository"
	"seungpyo.lee/SocialFeed/services/social-service/internal/service"
)

func main() {
	conf := config.LoadSocialConfig()
	log := logger.New(conf.LogLevel).Named("social-service")
	if !log.IsDebug() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(conf, log)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("%v", err)
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	postRepo := repository.NewPostRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	lifetimes := service.SessionLifetimes{Regular: conf.SessionTTL, RememberMe: conf.RememberMeTTL}
	authSvc := service.NewAuthService(userRepo, sessionRepo, token.NewGenerator(), lifetimes, time.Now, log)
	postSvc := service.NewPostService(postRepo, likeRepo, log)
	userSvc := service.NewUserService(userRepo)

	r := handler.NewRouter(handler.Handlers{
		Auth:   handler.NewAuthHandler(authSvc, conf.RememberMeTTL),
		Posts:  handler.NewPostHandler(postSvc),
		Users:  handler.NewUserHandler(userSvc),
		Health: handler.NewHealthHandler(func(ctx context.Context) database.Report { return database.Diagnose(ctx, db) }),
	}, authSvc, conf.AllowedOrigin, log)

	srv := &http.Server{
		Addr:              ":" + conf.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("forced shutdown: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("server stopped")
}
