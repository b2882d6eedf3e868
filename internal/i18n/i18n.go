// Package i18n provides the typed translation lookup for the booking
// flow. Keys and languages are enumerated; every language table must
// cover every key (enforced by TestMessageTablesComplete) and lookup
// falls back to English.
package i18n

import "strings"

// Lang is a supported display language.
type Lang string

const (
	LangEnglish Lang = "en"
	LangSpanish Lang = "es"
)

// Key identifies one translatable string.
type Key string

const (
	KeyFormTitle      Key = "formTitle"
	KeyFormStep1      Key = "formStep1"
	KeyFormStep2      Key = "formStep2"
	KeyFirstName      Key = "firstName"
	KeyLastName       Key = "lastName"
	KeyEmail          Key = "email"
	KeyMobileNumber   Key = "mobileNumber"
	KeyVehicleDetails Key = "vehicleDetails"
	KeyCarYear        Key = "carYear"
	KeyCarMake        Key = "carMake"
	KeyCarModel       Key = "carModel"
	KeyAvailableTimes Key = "availableTimes"
	KeySlotsDone      Key = "slotsDone"
	KeyNextBtn        Key = "nextBtn"
	KeyBackBtn        Key = "backBtn"
	KeySubmitBtn      Key = "submitBtn"

	KeyFallbackCustomer    Key = "fallbackCustomer"
	KeyFallbackVehicle     Key = "fallbackVehicle"
	KeyPendingConfirmation Key = "pendingConfirmation"
)

// allKeys lists every Key; the completeness test walks it.
var allKeys = []Key{
	KeyFormTitle, KeyFormStep1, KeyFormStep2,
	KeyFirstName, KeyLastName, KeyEmail, KeyMobileNumber,
	KeyVehicleDetails, KeyCarYear, KeyCarMake, KeyCarModel,
	KeyAvailableTimes, KeySlotsDone,
	KeyNextBtn, KeyBackBtn, KeySubmitBtn,
	KeyFallbackCustomer, KeyFallbackVehicle, KeyPendingConfirmation,
}

var english = map[Key]string{
	KeyFormTitle:      "Book Your Free Brake Inspection",
	KeyFormStep1:      "Step 1: Your Details",
	KeyFormStep2:      "Step 2: Pick a Date & Time",
	KeyFirstName:      "First Name",
	KeyLastName:       "Last Name",
	KeyEmail:          "Email",
	KeyMobileNumber:   "Mobile Number",
	KeyVehicleDetails: "Vehicle Details",
	KeyCarYear:        "Year",
	KeyCarMake:        "Make",
	KeyCarModel:       "Model",
	KeyAvailableTimes: "Available Times",
	KeySlotsDone:      "No more slots available today. Please pick another day.",
	KeyNextBtn:        "Next: Pick a Time",
	KeyBackBtn:        "Back",
	KeySubmitBtn:      "Confirm My Appointment",

	KeyFallbackCustomer:    "Dear Customer",
	KeyFallbackVehicle:     "Your Vehicle",
	KeyPendingConfirmation: "Pending Confirmation",
}

var spanish = map[Key]string{
	KeyFormTitle:      "Reserve Su Inspección de Frenos Gratis",
	KeyFormStep1:      "Paso 1: Sus Datos",
	KeyFormStep2:      "Paso 2: Elija Fecha y Hora",
	KeyFirstName:      "Nombre",
	KeyLastName:       "Apellido",
	KeyEmail:          "Correo Electrónico",
	KeyMobileNumber:   "Número de Celular",
	KeyVehicleDetails: "Detalles del Vehículo",
	KeyCarYear:        "Año",
	KeyCarMake:        "Marca",
	KeyCarModel:       "Modelo",
	KeyAvailableTimes: "Horarios Disponibles",
	KeySlotsDone:      "No quedan horarios disponibles hoy. Elija otro día.",
	KeyNextBtn:        "Siguiente: Elegir Hora",
	KeyBackBtn:        "Atrás",
	KeySubmitBtn:      "Confirmar Mi Cita",

	KeyFallbackCustomer:    "Estimado Cliente",
	KeyFallbackVehicle:     "Su Vehículo",
	KeyPendingConfirmation: "Confirmación Pendiente",
}

var tables = map[Lang]map[Key]string{
	LangEnglish: english,
	LangSpanish: spanish,
}

// T looks up key in the given language, falling back to English for
// unknown languages or missing entries.
func T(lang Lang, key Key) string {
	if table, ok := tables[lang]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	return english[key]
}

// DayHeaders returns the calendar's day-of-week abbreviations, Sunday
// first.
func DayHeaders(lang Lang) []string {
	if lang == LangSpanish {
		return []string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}
	}
	return []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
}

// Detect maps a browser language tag ("es-MX", "en-US", ...) to a
// supported language, defaulting to English.
func Detect(tag string) Lang {
	base, _, _ := strings.Cut(strings.TrimSpace(tag), "-")
	if strings.EqualFold(base, string(LangSpanish)) {
		return LangSpanish
	}
	return LangEnglish
}

// Valid reports whether lang is a supported language value.
func Valid(lang Lang) bool {
	_, ok := tables[lang]
	return ok
}
