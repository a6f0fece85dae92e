package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"roombook-backend/models"
	"roombook-backend/services"
	"roombook-backend/utils"
)

// AIController exposes the assistant endpoints. "AI" is generous: without a
// configured backend these are the deterministic heuristics, and even with
// one every failure falls back to them.
type AIController struct {
	Assistant *services.AssistantService
	Bookings  *services.BookingService
}

func NewAIController(assistant *services.AssistantService, bookings *services.BookingService) *AIController {
	return &AIController{Assistant: assistant, Bookings: bookings}
}

type suggestionsPayload struct {
	MeetingType string `json:"meetingType"`
	Attendees   int    `json:"attendees"`
	Purpose     string `json:"purpose"`
}

// RoomSuggestions handles POST /api/ai/room-suggestions.
func (ac *AIController) RoomSuggestions(c *gin.Context) {
	var payload suggestionsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorMessage(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request payload")
		return
	}

	description := strings.TrimSpace(payload.MeetingType + " " + payload.Purpose)
	suggestions, err := ac.Assistant.SuggestRooms(c.Request.Context(), description, payload.Attendees)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

type chatPayload struct {
	Message string                 `json:"message"`
	History []services.ChatMessage `json:"history"`
}

// Chat handles POST /api/ai/chat.
func (ac *AIController) Chat(c *gin.Context) {
	var payload chatPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorMessage(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request payload")
		return
	}
	if strings.TrimSpace(payload.Message) == "" {
		utils.JSONErrorMessage(c, http.StatusBadRequest, "VALIDATION_ERROR", "Message is required")
		return
	}

	reply := ac.Assistant.Chat(c.Request.Context(), payload.Message, payload.History)
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

type questionPayload struct {
	Question string `json:"question"`
}

// Question handles POST /api/ai/question.
func (ac *AIController) Question(c *gin.Context) {
	var payload questionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorMessage(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request payload")
		return
	}
	if strings.TrimSpace(payload.Question) == "" {
		utils.JSONErrorMessage(c, http.StatusBadRequest, "VALIDATION_ERROR", "Question is required")
		return
	}

	answer := ac.Assistant.AnswerQuestion(c.Request.Context(), payload.Question)
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

type forecastPayload struct {
	RoomID   string `json:"roomId"`
	Bookings []struct {
		Date   string `json:"date"`
		SlotID string `json:"timeSlot"`
		Status string `json:"status"`
	} `json:"bookings"`
}

// Forecast handles POST /api/ai/forecast. Clients may post their own
// booking list (the local-storage flow); with an empty list the server's
// store is used.
func (ac *AIController) Forecast(c *gin.Context) {
	var payload forecastPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorMessage(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request payload")
		return
	}
	if payload.RoomID == "" {
		utils.JSONErrorMessage(c, http.StatusBadRequest, "VALIDATION_ERROR", "roomId is required")
		return
	}

	if len(payload.Bookings) > 0 {
		bookings := make([]models.Booking, 0, len(payload.Bookings))
		for _, b := range payload.Bookings {
			date, err := parseBookingDate(b.Date)
			if err != nil {
				continue
			}
			bookings = append(bookings, models.Booking{
				RoomID: payload.RoomID,
				Date:   date,
				SlotID: b.SlotID,
				Status: b.Status,
			})
		}
		forecast := ac.Bookings.ForecastFromSnapshot(payload.RoomID, bookings, time.Now())
		c.JSON(http.StatusOK, forecast)
		return
	}

	forecast, _, err := ac.Bookings.Forecast(c.Request.Context(), payload.RoomID, time.Now())
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, forecast)
}
