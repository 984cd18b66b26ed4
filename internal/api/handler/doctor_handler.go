package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medibook/appointment-portal/internal/core/domain"
	"github.com/medibook/appointment-portal/internal/core/ports"
	"github.com/medibook/appointment-portal/internal/core/state"
)

// DoctorHandler serves the actions available to doctor accounts.
type DoctorHandler struct {
	doctors      ports.DoctorService
	appointments ports.AppointmentService
	store        *state.Store
}

func NewDoctorHandler(doctors ports.DoctorService, appointments ports.AppointmentService, store *state.Store) *DoctorHandler {
	return &DoctorHandler{doctors: doctors, appointments: appointments, store: store}
}

type doctorProfileRequest struct {
	Name           string `json:"name" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
}

type slotRequest struct {
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=Booked Visited"`
}

type redirectResponse struct {
	Redirect string `json:"redirect"`
}

// CreateProfile completes the signed-in doctor's profile.
//
// @Summary      Create doctor profile
// @Tags         doctor
// @Accept       json
// @Produce      json
// @Param        body  body      doctorProfileRequest  true  "Profile"
// @Success      201   {object}  redirectResponse
// @Failure      400   {object}  errorBody
// @Failure      502   {object}  errorBody
// @Router       /doctor/profile [post]
func (h *DoctorHandler) CreateProfile(c echo.Context) error {
	var req doctorProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	out := h.doctors.CreateProfile(c.Request().Context(), ports.DoctorProfileInput{Name: req.Name, Specialization: req.Specialization})
	return respond(c, out, http.StatusCreated, redirectResponse{Redirect: domain.RoleDoctor.DashboardPath()})
}

// CreateSlot publishes a new bookable slot.
//
// @Summary      Create slot
// @Tags         doctor
// @Accept       json
// @Produce      json
// @Param        body  body      slotRequest  true  "Slot"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  errorBody
// @Failure      502   {object}  errorBody
// @Router       /doctor/slots [post]
func (h *DoctorHandler) CreateSlot(c echo.Context) error {
	var req slotRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	out := h.doctors.CreateSlot(c.Request().Context(), ports.SlotInput{Date: req.Date, StartTime: req.StartTime, EndTime: req.EndTime})
	return respond(c, out, http.StatusCreated, h.store.DoctorSlots.Snapshot())
}

// DeleteSlot removes one of the doctor's unbooked slots.
//
// @Summary      Delete slot
// @Tags         doctor
// @Produce      json
// @Param        id   path      int  true  "Slot ID"
// @Success      200  {object}  map[string]any
// @Failure      502  {object}  errorBody
// @Router       /doctor/slots/{id} [delete]
func (h *DoctorHandler) DeleteSlot(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	out := h.doctors.DeleteSlot(c.Request().Context(), id)
	return respond(c, out, http.StatusOK, h.store.DoctorSlots.Snapshot())
}

// UpdateAppointmentStatus marks an appointment Booked or Visited.
//
// @Summary      Update appointment status
// @Tags         doctor
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "Appointment ID"
// @Param        body  body      statusRequest  true  "New status"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  errorBody
// @Failure      502   {object}  errorBody
// @Router       /doctor/appointments/{id}/status [patch]
func (h *DoctorHandler) UpdateAppointmentStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req statusRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	out := h.appointments.UpdateStatus(c.Request().Context(), id, domain.AppointmentStatus(req.Status))
	return respond(c, out, http.StatusOK, h.store.DoctorAppointments.Snapshot())
}

// Directory lists every doctor. It needs no session.
//
// @Summary      Doctor directory
// @Tags         doctor
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      502  {object}  errorBody
// @Router       /doctors [get]
func (h *DoctorHandler) Directory(c echo.Context) error {
	out := h.doctors.FetchDoctors(c.Request().Context())
	return respond(c, out, http.StatusOK, h.store.Doctors.Snapshot())
}
