package api

import (
	"context"
	"time"

	authUsecasePkg "donorhub-backend/internal/auth/usecase"
	calendarDelivery "donorhub-backend/internal/calendar/delivery"
	calendarDomain "donorhub-backend/internal/calendar/domain"
	calendarUsecasePkg "donorhub-backend/internal/calendar/usecase"
	campaignDelivery "donorhub-backend/internal/campaign/delivery"
	campaignUsecasePkg "donorhub-backend/internal/campaign/usecase"
	donorDelivery "donorhub-backend/internal/donor/delivery"
	donorUsecasePkg "donorhub-backend/internal/donor/usecase"
	grantDelivery "donorhub-backend/internal/grant/delivery"
	grantUsecasePkg "donorhub-backend/internal/grant/usecase"
	taskDelivery "donorhub-backend/internal/task/delivery"
	taskUsecasePkg "donorhub-backend/internal/task/usecase"
	voiceNoteDelivery "donorhub-backend/internal/voicenote/delivery"
	voiceNoteUsecasePkg "donorhub-backend/internal/voicenote/usecase"
	"donorhub-backend/pkg/ai"
	"donorhub-backend/pkg/config"
	"donorhub-backend/pkg/gcalendar"
	"donorhub-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

const defaultEventDuration = 30 * time.Minute

type Handler struct {
	authUsecase authUsecasePkg.AuthUsecase
	config      *config.Config
	l           logger.Logger

	taskHandler      *taskDelivery.TaskHandler
	eventHandler     *calendarDelivery.EventHandler
	donorHandler     *donorDelivery.DonorHandler
	campaignHandler  *campaignDelivery.CampaignHandler
	grantHandler     *grantDelivery.GrantHandler
	voiceNoteHandler *voiceNoteDelivery.VoiceNoteHandler
}

// gcalendarExporter adapts the Google Calendar client to the
// calendar usecase's CalendarExporter interface.
type gcalendarExporter struct {
	client     *gcalendar.Client
	calendarID string
}

func (e *gcalendarExporter) ExportEvent(ctx context.Context, event *calendarDomain.CalendarEvent) error {
	duration := defaultEventDuration
	if event.DurationMinutes != nil && *event.DurationMinutes > 0 {
		duration = time.Duration(*event.DurationMinutes) * time.Minute
	}

	_, err := e.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  e.calendarID,
		Summary:     event.Title,
		Description: event.Description,
		StartTime:   event.ScheduledAt,
		EndTime:     event.ScheduledAt.Add(duration),
	})
	return err
}

func NewHandler(
	authUc authUsecasePkg.AuthUsecase,
	taskUc taskUsecasePkg.TaskUsecase,
	eventUc calendarUsecasePkg.EventUsecase,
	donorUc donorUsecasePkg.DonorUsecase,
	campaignUc campaignUsecasePkg.CampaignUsecase,
	grantUc grantUsecasePkg.GrantUsecase,
	voiceNoteUc voiceNoteUsecasePkg.VoiceNoteUsecase,
	cfg *config.Config,
	l logger.Logger,
) *Handler {
	// Runtime-configurable Ollama settings backing the settings API
	InitRuntimeConfig(cfg.OllamaBaseURL, cfg.OllamaModel)

	aiCfg := ai.DynamicConfig{
		Provider:         ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:     cfg.GeminiApiKey,
		GetOllamaBaseURL: GetRuntimeOllamaBaseURL,
		GetOllamaModel:   GetRuntimeOllamaModel,
	}
	aiService, err := ai.NewAssistantServiceWithDynamicConfig(aiCfg)
	if err != nil {
		l.Warnf("AI service unavailable, transcription and time suggestions disabled: %v", err)
	} else {
		l.Infof("AI service initialized with provider: %s", cfg.AIProvider)
		voiceNoteUc.SetTranscriber(aiService)
		eventUc.SetTimeSuggester(aiService)
	}

	if cfg.GoogleCalendarCredentials != "" {
		client, err := gcalendar.NewClientFromCredentialsFile(context.Background(), cfg.GoogleCalendarCredentials)
		if err != nil {
			l.Warnf("Google Calendar export disabled: %v", err)
		} else {
			eventUc.SetExporter(&gcalendarExporter{client: client, calendarID: cfg.GoogleCalendarID})
			l.Infof("Google Calendar export enabled for calendar %s", cfg.GoogleCalendarID)
		}
	}

	return &Handler{
		authUsecase:      authUc,
		config:           cfg,
		l:                l,
		taskHandler:      taskDelivery.NewTaskHandler(taskUc),
		eventHandler:     calendarDelivery.NewEventHandler(eventUc),
		donorHandler:     donorDelivery.NewDonorHandler(donorUc),
		campaignHandler:  campaignDelivery.NewCampaignHandler(campaignUc),
		grantHandler:     grantDelivery.NewGrantHandler(grantUc),
		voiceNoteHandler: voiceNoteDelivery.NewVoiceNoteHandler(voiceNoteUc),
	}
}

func (h *Handler) Start(addr string) error {
	if !h.config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)

	return r.Run(addr)
}
