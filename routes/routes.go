package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"roombook-backend/controllers"
	"roombook-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	auth *controllers.AuthController,
	rooms *controllers.RoomController,
	bookings *controllers.BookingController,
	ai *controllers.AIController,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")
	{
		api.POST("/auth", auth.Login)

		// Catalog reads are public; the frontend needs them before login.
		api.GET("/rooms", rooms.GetRooms)
		api.GET("/rooms/:id/slots", rooms.GetRoomSlots)
		api.GET("/rooms/:id/forecast", rooms.GetRoomForecast)

		authed := api.Group("")
		authed.Use(middleware.RequireAuth(jwtSecret))
		{
			aiRoutes := authed.Group("/ai")
			{
				aiRoutes.POST("/room-suggestions", ai.RoomSuggestions)
				aiRoutes.POST("/chat", ai.Chat)
				aiRoutes.POST("/question", ai.Question)
				aiRoutes.POST("/forecast", ai.Forecast)
			}

			bookingRoutes := authed.Group("/bookings")
			{
				bookingRoutes.POST("", bookings.HandleAction)
				bookingRoutes.GET("", bookings.GetBookings)
				bookingRoutes.GET("/:id", bookings.GetBooking)
				bookingRoutes.PATCH("/:id/approve", bookings.ApproveBooking)
				bookingRoutes.PATCH("/:id/reject", bookings.RejectBooking)
				bookingRoutes.PATCH("/:id/cancel", bookings.CancelBooking)
				bookingRoutes.DELETE("/:id", bookings.DeleteBooking)
			}
		}
	}

	return r
}
