package chatbot

import (
	"fmt"
	"strings"

	domain "github.com/BruksfildServices01/barber-chatbot/internal/domain/booking"
)

const (
	shopName     = "Royal Studio"
	chatbotNotes = "Reservado via chatbot"
)

// InternalErrorMessage is returned when a turn could not be processed at all.
const InternalErrorMessage = "Lo siento, hubo un error. Intenta de nuevo. / Sorry, there was an error. Try again."

var spanishWeekdays = []string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

func dayLabel(day string) string {
	d, ok := domain.ParseDay(day)
	if !ok {
		return day
	}
	return fmt.Sprintf("%s %s", spanishWeekdays[d.Weekday()], day)
}

func msgWelcome() string {
	return fmt.Sprintf(
		"¡Hola! 👋 Soy el asistente de %[1]s y puedo ayudarte a reservar tu cita.\n"+
			"Hi! I'm the %[1]s assistant and I can help you book your appointment.\n\n"+
			"¿Para qué día y hora te gustaría reservar?\nWhat day and time would you like to book?\n\n"+
			"🕐 Lunes a sábado, 10:00 - 19:30 / Monday to Saturday, 10:00 - 19:30",
		shopName,
	)
}

func msgHelloAgain() string {
	return "¡Hola de nuevo! ¿En qué puedo ayudarte?\nHi again! How can I help you?"
}

func missingFields(s SessionState, roster domain.Roster) []string {
	var missing []string
	if s.Barber == "" {
		missing = append(missing, fmt.Sprintf("barbero/barber (%s)", strings.Join(roster, ", ")))
	}
	if s.Day == "" {
		missing = append(missing, "día/day")
	}
	if s.Time == "" {
		missing = append(missing, "hora/time")
	}
	return missing
}

func msgMissing(missing []string) string {
	list := strings.Join(missing, ", ")
	return fmt.Sprintf(
		"Todavía necesito: %[1]s.\nI still need: %[1]s.\n\n"+
			"Ejemplo: \"mañana a las 10:00\" / Example: \"tomorrow at 10:00\"",
		list,
	)
}

func msgNonWorkingDay() string {
	return "Lo siento, ese día no abrimos. Trabajamos de lunes a sábado.\n" +
		"Sorry, we are closed that day. We work Monday to Saturday.\n\n" +
		"¿Qué otro día te viene bien? / What other day suits you?"
}

func msgPastDay() string {
	return "Esa fecha ya ha pasado. ¿Qué otro día te viene bien?\n" +
		"That date has already passed. What other day suits you?"
}

func slotLines(s SessionState) string {
	return fmt.Sprintf("📅 %s\n⏰ %s\n💈 %s", dayLabel(s.Day), s.Time, s.Barber)
}

func msgAvailable(s SessionState) string {
	return fmt.Sprintf(
		"✅ ¡El horario está disponible!\n\n%s\n\n"+
			"Para confirmar tu reserva necesito tu nombre completo.\n"+
			"To confirm your booking I need your full name.",
		slotLines(s),
	)
}

func msgAlternativeChosen(s SessionState) string {
	return fmt.Sprintf(
		"✅ ¡Perfecto! Has elegido:\n\n%s\n\n"+
			"Para confirmar necesito tu nombre completo.\nTo confirm I need your full name.",
		slotLines(s),
	)
}

func altList(alts []domain.Alternative) string {
	lines := make([]string, 0, len(alts))
	for i, a := range alts {
		lines = append(lines, fmt.Sprintf("%d) %s a las %s", i+1, dayLabel(a.Day), a.Time))
	}
	return strings.Join(lines, "\n")
}

func msgAlternatives(day, slot string, alts []domain.Alternative) string {
	list := altList(alts)
	return fmt.Sprintf(
		"❌ Lo siento, %[1]s el %[2]s no está disponible. Tengo estas alternativas:\n%[3]s\n\n"+
			"¿Cuál prefieres? (responde con el número)\n\n"+
			"Sorry, %[1]s on %[2]s is not available. I have these alternatives:\n%[3]s\n\n"+
			"Which do you prefer? (reply with the number)",
		slot, dayLabel(day), list,
	)
}

func msgNoAvailability() string {
	return "❌ Lo siento, no hay horarios disponibles cercanos. ¿Probamos otro día u hora?\n" +
		"Sorry, there are no nearby slots available. Shall we try another day or time?"
}

func msgPickValidNumber(alts []domain.Alternative) string {
	return fmt.Sprintf(
		"Por favor elige un número válido de las opciones.\nPlease choose a valid number from the options.\n\n%s",
		altList(alts),
	)
}

func msgPickOrNew() string {
	return "Por favor elige una de las opciones (1, 2, 3) o indica otro día/hora.\n" +
		"Please choose an option (1, 2, 3) or suggest another day/time."
}

func msgAskName() string {
	return "Por favor escribe tu nombre completo.\nPlease enter your full name."
}

func msgAskPhone(name string) string {
	return fmt.Sprintf(
		"¡Gracias, %[1]s! 📱 Ahora necesito tu número de teléfono.\n"+
			"Thanks, %[1]s! 📱 Now I need your phone number.",
		name,
	)
}

func msgInvalidPhone() string {
	return "Por favor escribe un número de teléfono válido.\nPlease enter a valid phone number."
}

func msgSummary(s SessionState) string {
	return fmt.Sprintf(
		"📋 Resumen de tu reserva / Booking summary:\n\n"+
			"💈 Barbero: %s\n📅 Día: %s\n⏰ Hora: %s\n👤 Nombre: %s\n📱 Teléfono: %s\n\n"+
			"¿Confirmas la reserva? (sí/no)\nDo you confirm the booking? (yes/no)",
		s.Barber, dayLabel(s.Day), s.Time, s.ClientName, s.PhoneNumber,
	)
}

func msgConfirmYesNo() string {
	return "¿Confirmas la reserva? Responde sí o no.\nDo you confirm? Reply yes or no."
}

func msgBooked(s SessionState) string {
	return fmt.Sprintf(
		"🎉 ¡Reserva confirmada!\n\n%s\n\n"+
			"¡Te esperamos en %[2]s! / We look forward to seeing you at %[2]s!\n\n"+
			"¿Necesitas algo más? / Need anything else?",
		slotLines(s), shopName,
	)
}

func msgJustTaken() string {
	return "❌ Lo siento, ese horario acaba de ser reservado por otra persona. ¿Quieres elegir otro?\n" +
		"Sorry, that slot was just booked by someone else. Would you like to choose another?"
}

func msgSaveFailed() string {
	return "❌ No pudimos guardar tu reserva. Responde \"sí\" para intentarlo de nuevo.\n" +
		"We could not save your booking. Reply \"yes\" to try again."
}

func msgCancelled() string {
	return "Reserva cancelada. ¿Te gustaría reservar otro horario?\n" +
		"Booking cancelled. Would you like to book another time?"
}

func msgAnythingElse() string {
	return "¿Necesitas algo más? / Need anything else?"
}
