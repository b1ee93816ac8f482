package main

import (
	"log"

	api "donorhub-backend/cmd/api"
	authdomain "donorhub-backend/internal/auth/domain"
	authRepo "donorhub-backend/internal/auth/repository"
	authUsecase "donorhub-backend/internal/auth/usecase"
	calendarDomain "donorhub-backend/internal/calendar/domain"
	calendarRepo "donorhub-backend/internal/calendar/repository"
	calendarUsecase "donorhub-backend/internal/calendar/usecase"
	campaignDomain "donorhub-backend/internal/campaign/domain"
	campaignRepo "donorhub-backend/internal/campaign/repository"
	campaignUsecase "donorhub-backend/internal/campaign/usecase"
	donorDomain "donorhub-backend/internal/donor/domain"
	donorRepo "donorhub-backend/internal/donor/repository"
	donorUsecase "donorhub-backend/internal/donor/usecase"
	grantDomain "donorhub-backend/internal/grant/domain"
	grantRepo "donorhub-backend/internal/grant/repository"
	grantUsecase "donorhub-backend/internal/grant/usecase"
	taskDomain "donorhub-backend/internal/task/domain"
	taskRepo "donorhub-backend/internal/task/repository"
	taskUsecase "donorhub-backend/internal/task/usecase"
	voiceNoteDomain "donorhub-backend/internal/voicenote/domain"
	voiceNoteRepo "donorhub-backend/internal/voicenote/repository"
	voiceNoteUsecase "donorhub-backend/internal/voicenote/usecase"
	"donorhub-backend/pkg/config"
	"donorhub-backend/pkg/database"
	"donorhub-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	l, err := logger.New(cfg.Debug)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer l.Sync()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		l.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&taskDomain.Task{},
		&calendarDomain.CalendarEvent{},
		&donorDomain.Donor{},
		&campaignDomain.Campaign{},
		&grantDomain.Grant{},
		&voiceNoteDomain.VoiceNote{},
	); err != nil {
		l.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)
	eventRepository := calendarRepo.NewGormEventRepository(db)
	donorRepository := donorRepo.NewGormDonorRepository(db)
	campaignRepository := campaignRepo.NewGormCampaignRepository(db)
	grantRepository := grantRepo.NewGormGrantRepository(db)
	voiceNoteRepository := voiceNoteRepo.NewGormVoiceNoteRepository(db)

	// Initialize usecases
	authUc := authUsecase.NewAuthUsecase(userRepository, cfg)
	taskUc := taskUsecase.NewTaskUsecase(taskRepository, l)
	eventUc := calendarUsecase.NewEventUsecase(eventRepository, l)
	donorUc := donorUsecase.NewDonorUsecase(donorRepository, l)
	campaignUc := campaignUsecase.NewCampaignUsecase(campaignRepository, l)
	grantUc := grantUsecase.NewGrantUsecase(grantRepository, l)
	voiceNoteUc := voiceNoteUsecase.NewVoiceNoteUsecase(voiceNoteRepository, l)

	handler := api.NewHandler(authUc, taskUc, eventUc, donorUc, campaignUc, grantUc, voiceNoteUc, cfg, l)

	l.Infof("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		l.Fatalf("Failed to start server: %v", err)
	}
}
