package main

import (
	"log"
	"time"

	"bibleapp/backend/internal/config"
	"bibleapp/backend/internal/db"
	"bibleapp/backend/internal/handler"
	"bibleapp/backend/internal/repository"
	"bibleapp/backend/internal/router"
	"bibleapp/backend/internal/service"
)

func main() {
	cfg := config.Load()

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(database)
	planRepo := repository.NewPlanRepository(database)
	grassRepo := repository.NewGrassRepository(database)
	favoriteRepo := repository.NewFavoriteRepository(database)
	memoRepo := repository.NewMemoRepository(database)
	prayerRepo := repository.NewPrayerRepository(database)
	settingsRepo := repository.NewSettingsRepository(database)
	backupRepo := repository.NewBackupRepository(database)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	planService := service.NewPlanService(planRepo, grassRepo, time.Now)
	grassService := service.NewGrassService(grassRepo, time.Now)
	annotationService := service.NewAnnotationService(favoriteRepo, memoRepo, prayerRepo, time.Now)
	settingsService := service.NewSettingsService(settingsRepo, cfg.DefaultLanguage, cfg.DefaultTheme, time.Now)
	backupService := service.NewBackupService(backupRepo, cfg.BackupSource, time.Now)

	engine := router.New(authService, router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Plans:       handler.NewPlanHandler(planService),
		Grass:       handler.NewGrassHandler(grassService),
		Annotations: handler.NewAnnotationHandler(annotationService),
		Settings:    handler.NewSettingsHandler(settingsService),
		Backup:      handler.NewBackupHandler(backupService),
		Books:       handler.NewBookHandler(),
	}, cfg.CORSOrigins)

	log.Printf("backend listening on :%s", cfg.Port)
	if err := engine.Run(":" + cfg.Port); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
