package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"roombook-backend/services"
	"roombook-backend/utils"
)

type RoomController struct {
	Bookings *services.BookingService
}

func NewRoomController(bookings *services.BookingService) *RoomController {
	return &RoomController{Bookings: bookings}
}

// GetRooms handles GET /api/rooms.
func (rc *RoomController) GetRooms(c *gin.Context) {
	c.JSON(http.StatusOK, rc.Bookings.Rooms)
}

// GetRoomSlots handles GET /api/rooms/:id/slots?date=2026-09-01 and returns
// the slot table with availability for that day.
func (rc *RoomController) GetRoomSlots(c *gin.Context) {
	roomID := c.Param("id")
	date, ok := parseDateParam(c)
	if !ok {
		return
	}

	slots, err := rc.Bookings.DaySlots(c.Request.Context(), roomID, date)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"roomId": roomID, "date": date.Format("2006-01-02"), "slots": slots})
}

// GetRoomForecast handles GET /api/rooms/:id/forecast?date=... and returns
// the 7-day demand summary plus the per-day outlook.
func (rc *RoomController) GetRoomForecast(c *gin.Context) {
	roomID := c.Param("id")
	date, ok := parseDateParam(c)
	if !ok {
		return
	}

	forecast, outlook, err := rc.Bookings.Forecast(c.Request.Context(), roomID, date)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"forecast": forecast, "outlook": outlook})
}

// parseDateParam reads the optional date query (YYYY-MM-DD), defaulting to
// today. Writes the error response itself on bad input.
func parseDateParam(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), true
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		utils.JSONErrorMessage(c, http.StatusBadRequest, "VALIDATION_ERROR", "date must be YYYY-MM-DD")
		return time.Time{}, false
	}
	return date, true
}
