package handlers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-chatbot/internal/domain/booking"
	"github.com/BruksfildServices01/barber-chatbot/internal/httperr"
	"github.com/BruksfildServices01/barber-chatbot/internal/httpresp"
	"github.com/BruksfildServices01/barber-chatbot/internal/models"
	ucBooking "github.com/BruksfildServices01/barber-chatbot/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type DaySlotsLister interface {
	Execute(ctx context.Context, day, barber string) (*ucBooking.DaySlots, error)
}

type BookingCommitter interface {
	Execute(ctx context.Context, in ucBooking.CommitBookingInput) (*models.Booking, error)
}

type BookingHandler struct {
	roster    domain.Roster
	daySlots  DaySlotsLister
	committer BookingCommitter
}

func NewBookingHandler(
	roster domain.Roster,
	daySlots DaySlotsLister,
	committer BookingCommitter,
) *BookingHandler {
	return &BookingHandler{
		roster:    roster,
		daySlots:  daySlots,
		committer: committer,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	Barber      string `json:"barber"`
	Day         string `json:"day" binding:"required"`  // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	ClientName  string `json:"client_name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Notes       string `json:"notes"`
}

// ======================================================
// BARBERS
// ======================================================

func (h *BookingHandler) ListBarbers(c *gin.Context) {
	httpresp.List(c, []string(h.roster))
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	day := strings.TrimSpace(c.Query("day"))
	if day == "" {
		httperr.BadRequest(c, "missing_day", "El día es obligatorio. / The day is required.")
		return
	}

	out, err := h.daySlots.Execute(c.Request.Context(), day, strings.TrimSpace(c.Query("barber")))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos. / Invalid data.")
		return
	}

	barber := req.Barber
	if strings.TrimSpace(barber) == "" {
		if sole, ok := h.roster.Sole(); ok {
			barber = sole
		}
	}

	b, err := h.committer.Execute(c.Request.Context(), ucBooking.CommitBookingInput{
		Barber:      barber,
		Day:         strings.TrimSpace(req.Day),
		Time:        strings.TrimSpace(req.Time),
		ClientName:  req.ClientName,
		PhoneNumber: req.PhoneNumber,
		Notes:       req.Notes,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, b)
}
