package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medibook/appointment-portal/internal/core/ports"
	"github.com/medibook/appointment-portal/internal/core/state"
)

// AdminHandler serves the admin directory and appointment overview.
type AdminHandler struct {
	admin        ports.AdminService
	appointments ports.AppointmentService
	store        *state.Store
}

func NewAdminHandler(admin ports.AdminService, appointments ports.AppointmentService, store *state.Store) *AdminHandler {
	return &AdminHandler{admin: admin, appointments: appointments, store: store}
}

type adminDoctorRequest struct {
	UserID         int64  `json:"user_id" validate:"required,gt=0"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
}

type adminPatientRequest struct {
	UserID      int64  `json:"user_id" validate:"required,gt=0"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// --- Doctors ---

// ListDoctors loads every doctor profile into the admin doctors slice.
//
// @Summary      List doctors
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      502  {object}  errorBody
// @Router       /admin/doctors [get]
func (h *AdminHandler) ListDoctors(c echo.Context) error {
	out := h.admin.FetchDoctors(c.Request().Context())
	return respond(c, out, http.StatusOK, h.store.AdminDoctors.Snapshot())
}

// CreateDoctor attaches a doctor profile to an existing doctor user.
//
// @Summary      Create doctor
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      adminDoctorRequest  true  "Doctor"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  errorBody
// @Failure      502   {object}  errorBody
// @Router       /admin/doctors [post]
func (h *AdminHandler) CreateDoctor(c echo.Context) error {
	var req adminDoctorRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	out := h.admin.CreateDoctor(c.Request().Context(), ports.AdminDoctorInput{
		UserID:         req.UserID,
		Name:           req.Name,
		Specialization: req.Specialization,
	})
	return respond(c, out, http.StatusCreated, h.store.AdminDoctors.Snapshot())
}

// UpdateDoctor applies a partial update to one doctor profile.
//
// @Summary      Update doctor
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Doctor ID"
// @Param        body  body      ports.DoctorPatch  true  "Fields to change"
// @Success      200   {object}  map[string]any
// @Failure      502   {object}  errorBody
// @Router       /admin/doctors/{id} [patch]
func (h *AdminHandler) UpdateDoctor(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var patch ports.DoctorPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	out := h.admin.UpdateDoctor(c.Request().Context(), id, patch)
	return respond(c, out, http.StatusOK, h.store.AdminDoctors.Snapshot())
}

// DeleteDoctor removes a doctor profile.
//
// @Summary      Delete doctor
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "Doctor ID"
// @Success      200  {object}  map[string]any
// @Failure      502  {object}  errorBody
// @Router       /admin/doctors/{id} [delete]
func (h *AdminHandler) DeleteDoctor(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	out := h.admin.DeleteDoctor(c.Request().Context(), id)
	return respond(c, out, http.StatusOK, h.store.AdminDoctors.Snapshot())
}

// --- Patients ---

// ListPatients loads every patient profile into the admin patients slice.
//
// @Summary      List patients
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      502  {object}  errorBody
// @Router       /admin/patients [get]
func (h *AdminHandler) ListPatients(c echo.Context) error {
	out := h.admin.FetchPatients(c.Request().Context())
	return respond(c, out, http.StatusOK, h.store.AdminPatients.Snapshot())
}

// CreatePatient attaches a patient profile to an existing patient user.
//
// @Summary      Create patient
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      adminPatientRequest  true  "Patient"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  errorBody
// @Failure      502   {object}  errorBody
// @Router       /admin/patients [post]
func (h *AdminHandler) CreatePatient(c echo.Context) error {
	var req adminPatientRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	out := h.admin.CreatePatient(c.Request().Context(), ports.AdminPatientInput{
		UserID:      req.UserID,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
	})
	return respond(c, out, http.StatusCreated, h.store.AdminPatients.Snapshot())
}

// UpdatePatient applies a partial update to one patient profile.
//
// @Summary      Update patient
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Patient ID"
// @Param        body  body      ports.PatientPatch  true  "Fields to change"
// @Success      200   {object}  map[string]any
// @Failure      502   {object}  errorBody
// @Router       /admin/patients/{id} [patch]
func (h *AdminHandler) UpdatePatient(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var patch ports.PatientPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	out := h.admin.UpdatePatient(c.Request().Context(), id, patch)
	return respond(c, out, http.StatusOK, h.store.AdminPatients.Snapshot())
}

// DeletePatient removes a patient profile.
//
// @Summary      Delete patient
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "Patient ID"
// @Success      200  {object}  map[string]any
// @Failure      502  {object}  errorBody
// @Router       /admin/patients/{id} [delete]
func (h *AdminHandler) DeletePatient(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	out := h.admin.DeletePatient(c.Request().Context(), id)
	return respond(c, out, http.StatusOK, h.store.AdminPatients.Snapshot())
}

// Appointments returns the overview of every appointment.
//
// @Summary      Appointment overview
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      502  {object}  errorBody
// @Router       /admin/appointments [get]
func (h *AdminHandler) Appointments(c echo.Context) error {
	out := h.appointments.FetchAllAppointments(c.Request().Context())
	return respond(c, out, http.StatusOK, h.store.AllAppointments.Snapshot())
}
