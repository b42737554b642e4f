package transport

import (
	"net/http"

	"github.com/ds124wfegd/event-catalog/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

// InitRoutes keeps the historical flat route layout the frontend
// already speaks; renaming paths would break deployed clients.
func InitRoutes(
	trackHandler *TrackHandler,
	eventHandler *EventHandler,
	feedbackHandler *FeedbackHandler,
	recommendationHandler *RecommendationHandler,
	catalogHandler *CatalogHandler,
	uploadsDir string,
) *gin.Engine {

	router := gin.New()

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(30))

	// Event track routes
	router.POST("/event-track", trackHandler.CreateTrack)
	router.POST("/event-track-edit", trackHandler.UpdateTrack)
	router.GET("/all-event-tracks", trackHandler.GetAllTracks)
	router.GET("/event-track-byid/:id", trackHandler.GetTrack)
	router.DELETE("/delete-event-track/:id", trackHandler.DeleteTrack)

	// Event routes
	router.POST("/event", eventHandler.CreateEvent)
	router.POST("/event-edit", eventHandler.UpdateEvent)
	router.GET("/all-events", eventHandler.GetAllEvents)
	router.GET("/event-byid/:id", eventHandler.GetEvent)
	router.DELETE("/delete-event/:id", eventHandler.DeleteEvent)

	// Seat ledger
	router.POST("/event/:id/decrement-seat", eventHandler.DecrementSeat)
	router.POST("/event/:id/increment-seat", eventHandler.IncrementSeat)

	// Feedback routes
	router.POST("/feedback", feedbackHandler.CreateFeedback)
	router.GET("/all-feedbacks", feedbackHandler.GetAllFeedbacks)
	router.DELETE("/delete-feedback/:id", feedbackHandler.DeleteFeedback)

	// Recommendations
	router.POST("/recommended", recommendationHandler.Recommend)
	router.GET("/recommended", recommendationHandler.ListRecommended)

	// Aggregated catalog and admin
	router.GET("/full-data", catalogHandler.FullCatalog)
	router.DELETE("/wipe", catalogHandler.Wipe)
	router.GET("/generate-hash", catalogHandler.GenerateHash)

	// Content-addressed image files from the file backend
	if uploadsDir != "" {
		router.Static("/uploads", uploadsDir)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
