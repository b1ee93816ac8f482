package api

import (
	"net/http"

	"donorhub-backend/internal/auth/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	authHandler := delivery.NewAuthHandler(h.authUsecase)
	authRequired := delivery.AuthMiddleware(h.authUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.POST("/logout-all", authRequired, authHandler.LogoutAll)
			auth.GET("/me", authRequired, authHandler.Me)
			auth.PATCH("/me", authRequired, authHandler.UpdateMe)
		}

		// Task routes: reads are open, mutations require a token
		tasks := api.Group("/tasks")
		{
			tasks.GET("", h.taskHandler.GetTasks)
			tasks.GET("/:id", h.taskHandler.GetTaskByID)
			tasks.POST("", authRequired, h.taskHandler.CreateTask)
			tasks.PATCH("/:id", authRequired, h.taskHandler.UpdateTask)
			tasks.DELETE("/:id", authRequired, h.taskHandler.DeleteTask)
		}

		// Calendar event routes (open)
		events := api.Group("/calendar-events")
		{
			events.GET("", h.eventHandler.GetEvents)
			events.GET("/:id", h.eventHandler.GetEventByID)
			events.POST("", h.eventHandler.CreateEvent)
			events.PATCH("/:id", h.eventHandler.UpdateEvent)
			events.DELETE("/:id", h.eventHandler.DeleteEvent)
		}

		// Donor routes
		donors := api.Group("/donors")
		{
			donors.GET("", h.donorHandler.GetDonors)
			donors.GET("/search", h.donorHandler.SearchDonors)
			donors.GET("/:id", h.donorHandler.GetDonorByID)
			donors.GET("/:id/placement", h.donorHandler.GetDonorPlacement)
			donors.POST("", authRequired, h.donorHandler.CreateDonor)
			donors.PATCH("/:id", authRequired, h.donorHandler.UpdateDonor)
			donors.DELETE("/:id", authRequired, h.donorHandler.DeleteDonor)
		}

		// Campaign routes
		campaigns := api.Group("/campaigns")
		{
			campaigns.GET("", h.campaignHandler.GetCampaigns)
			campaigns.GET("/:id", h.campaignHandler.GetCampaignByID)
			campaigns.POST("", authRequired, h.campaignHandler.CreateCampaign)
			campaigns.PATCH("/:id", authRequired, h.campaignHandler.UpdateCampaign)
			campaigns.DELETE("/:id", authRequired, h.campaignHandler.DeleteCampaign)
		}

		// Grant routes
		grants := api.Group("/grants")
		{
			grants.GET("", h.grantHandler.GetGrants)
			grants.GET("/:id", h.grantHandler.GetGrantByID)
			grants.POST("", authRequired, h.grantHandler.CreateGrant)
			grants.PATCH("/:id", authRequired, h.grantHandler.UpdateGrant)
			grants.DELETE("/:id", authRequired, h.grantHandler.DeleteGrant)
		}

		// Voice note routes
		voiceNotes := api.Group("/voice-notes")
		{
			voiceNotes.GET("", h.voiceNoteHandler.GetVoiceNotes)
			voiceNotes.GET("/:id", h.voiceNoteHandler.GetVoiceNoteByID)
			voiceNotes.POST("", authRequired, h.voiceNoteHandler.CreateVoiceNote)
			voiceNotes.POST("/:id/transcribe", authRequired, h.voiceNoteHandler.RetranscribeVoiceNote)
			voiceNotes.DELETE("/:id", authRequired, h.voiceNoteHandler.DeleteVoiceNote)
		}

		// Settings routes (public) - runtime AI provider configuration
		settings := api.Group("/settings")
		{
			settings.GET("/ollama", GetOllamaSettings)
			settings.PUT("/ollama", UpdateOllamaSettings)
			settings.POST("/ollama/test", TestOllamaConnection)
		}
	}
}
