package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-chatbot/internal/domain/booking"
	"github.com/BruksfildServices01/barber-chatbot/internal/httperr"
)

// writeBookingError maps use case failures onto the public error body.
func writeBookingError(c *gin.Context, err error) {
	code, isBusiness := httperr.BusinessCode(err)

	switch {
	case errors.Is(err, domain.ErrSlotTaken):
		httperr.Conflict(c, "slot_taken", "Ese horario ya está reservado. / That slot is already booked.")

	case isBusiness:
		httperr.BadRequest(c, code, "Datos inválidos. / Invalid data.")

	case errors.Is(err, domain.ErrStoreUnavailable):
		httperr.Unavailable(c, "store_unavailable", "Servicio no disponible. / Service unavailable.")

	default:
		httperr.Internal(c, "internal_error", "Error interno. / Internal error.")
	}
}
