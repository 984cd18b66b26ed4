package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medibook/appointment-portal/internal/core/domain"
	"github.com/medibook/appointment-portal/internal/core/ports"
	"github.com/medibook/appointment-portal/internal/core/state"
)

// PatientHandler serves the actions available to patient accounts.
type PatientHandler struct {
	patients     ports.PatientService
	appointments ports.AppointmentService
	store        *state.Store
}

func NewPatientHandler(patients ports.PatientService, appointments ports.AppointmentService, store *state.Store) *PatientHandler {
	return &PatientHandler{patients: patients, appointments: appointments, store: store}
}

type patientProfileRequest struct {
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}

type bookRequest struct {
	SlotID int64 `json:"slot_id" validate:"required,gt=0"`
}

// CreateProfile completes the signed-in patient's profile.
//
// @Summary      Create patient profile
// @Tags         patient
// @Accept       json
// @Produce      json
// @Param        body  body      patientProfileRequest  true  "Profile"
// @Success      201   {object}  redirectResponse
// @Failure      400   {object}  errorBody
// @Failure      502   {object}  errorBody
// @Router       /patient/profile [post]
func (h *PatientHandler) CreateProfile(c echo.Context) error {
	var req patientProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	out := h.patients.CreateProfile(c.Request().Context(), ports.PatientProfileInput{Name: req.Name, PhoneNumber: req.PhoneNumber})
	return respond(c, out, http.StatusCreated, redirectResponse{Redirect: domain.RolePatient.DashboardPath()})
}

// Book reserves an available slot and returns the refreshed slot list.
//
// @Summary      Book appointment
// @Tags         patient
// @Accept       json
// @Produce      json
// @Param        body  body      bookRequest  true  "Slot to book"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  errorBody
// @Failure      502   {object}  errorBody
// @Router       /patient/appointments [post]
func (h *PatientHandler) Book(c echo.Context) error {
	var req bookRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	out := h.appointments.Book(c.Request().Context(), req.SlotID)
	return respond(c, out, http.StatusCreated, h.store.AvailableSlots.Snapshot())
}

// Cancel cancels one of the patient's appointments.
//
// @Summary      Cancel appointment
// @Tags         patient
// @Produce      json
// @Param        id   path      int  true  "Appointment ID"
// @Success      200  {object}  map[string]any
// @Failure      502  {object}  errorBody
// @Router       /patient/appointments/{id}/cancel [post]
func (h *PatientHandler) Cancel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	out := h.patients.CancelAppointment(c.Request().Context(), id)
	return respond(c, out, http.StatusOK, h.store.PatientAppointments.Snapshot())
}
