package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"roombook-backend/models"
	"roombook-backend/services"
	"roombook-backend/utils"
)

type BookingController struct {
	Service *services.BookingService
}

func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{Service: service}
}

// bookingPayload is the wire form of a create request. Dates arrive either
// as RFC 3339 timestamps or plain YYYY-MM-DD strings depending on the
// client; both are accepted.
type bookingPayload struct {
	RoomID         string `json:"roomId"`
	Date           string `json:"date"`
	SlotID         string `json:"timeSlotId"`
	RequesterName  string `json:"requesterName"`
	RequesterEmail string `json:"requesterEmail"`
	Purpose        string `json:"purpose"`
	Attendees      int    `json:"attendees"`
	Notes          string `json:"notes"`
}

func parseBookingDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func (p bookingPayload) toInput() (services.CreateBookingInput, error) {
	date, err := parseBookingDate(p.Date)
	if err != nil {
		return services.CreateBookingInput{}, err
	}
	return services.CreateBookingInput{
		RoomID:         p.RoomID,
		Date:           date,
		SlotID:         p.SlotID,
		RequesterName:  p.RequesterName,
		RequesterEmail: p.RequesterEmail,
		Purpose:        p.Purpose,
		Attendees:      p.Attendees,
		Notes:          p.Notes,
	}, nil
}

// actionPayload is the combined create/fetch envelope the original frontend
// posts to /api/bookings.
type actionPayload struct {
	Action  string          `json:"action"`
	Booking *bookingPayload `json:"booking"`
	Filters *struct {
		RoomID    string `json:"roomId"`
		Status    string `json:"status"`
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	} `json:"filters"`
}

// HandleAction handles POST /api/bookings with {action: "create"|"fetch"}.
func (bc *BookingController) HandleAction(c *gin.Context) {
	var payload actionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorMessage(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request payload")
		return
	}

	switch payload.Action {
	case "create":
		if payload.Booking == nil {
			utils.JSONErrorMessage(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing booking")
			return
		}
		in, err := payload.Booking.toInput()
		if err != nil {
			utils.JSONErrorMessage(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		booking, err := bc.Service.Create(c.Request.Context(), in)
		if err != nil {
			utils.JSONError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"bookingId": booking.ID,
			"message":   "Booking created successfully",
			"booking":   booking,
		})

	case "fetch":
		filter := models.BookingFilter{}
		if payload.Filters != nil {
			filter.RoomID = payload.Filters.RoomID
			filter.Status = payload.Filters.Status
			if payload.Filters.StartDate != "" && payload.Filters.EndDate != "" {
				start, err1 := parseBookingDate(payload.Filters.StartDate)
				end, err2 := parseBookingDate(payload.Filters.EndDate)
				if err1 != nil || err2 != nil {
					utils.JSONErrorMessage(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date range")
					return
				}
				filter.StartDate = start
				filter.EndDate = end
			}
		}
		bookings, err := bc.Service.List(c.Request.Context(), filter)
		if err != nil {
			utils.JSONError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": bookings})

	default:
		utils.JSONErrorMessage(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid action")
	}
}

// GetBookings handles GET /api/bookings with optional roomId, status,
// startDate and endDate query filters.
func (bc *BookingController) GetBookings(c *gin.Context) {
	filter := models.BookingFilter{
		RoomID: c.Query("roomId"),
		Status: c.Query("status"),
	}
	if c.Query("startDate") != "" && c.Query("endDate") != "" {
		start, err1 := parseBookingDate(c.Query("startDate"))
		end, err2 := parseBookingDate(c.Query("endDate"))
		if err1 != nil || err2 != nil {
			utils.JSONErrorMessage(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date range")
			return
		}
		filter.StartDate = start
		filter.EndDate = end
	}

	bookings, err := bc.Service.List(c.Request.Context(), filter)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBooking handles GET /api/bookings/:id.
func (bc *BookingController) GetBooking(c *gin.Context) {
	booking, err := bc.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ApproveBooking handles PATCH /api/bookings/:id/approve. This is where the
// conflict check for competing pending requests applies.
func (bc *BookingController) ApproveBooking(c *gin.Context) {
	booking, err := bc.Service.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// RejectBooking handles PATCH /api/bookings/:id/reject.
func (bc *BookingController) RejectBooking(c *gin.Context) {
	booking, err := bc.Service.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CancelBooking handles PATCH /api/bookings/:id/cancel.
func (bc *BookingController) CancelBooking(c *gin.Context) {
	booking, err := bc.Service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// DeleteBooking handles DELETE /api/bookings/:id (the CRUD-backend
// variant; the primary flow cancels instead).
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	if err := bc.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking deleted"})
}
