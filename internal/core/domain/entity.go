package domain

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusBooked  AppointmentStatus = "Booked"
	StatusVisited AppointmentStatus = "Visited"
)

// Valid reports whether s is one of the statuses the backend accepts.
func (s AppointmentStatus) Valid() bool {
	return s == StatusBooked || s == StatusVisited
}

// Account is the nested user record the admin endpoints embed in profiles.
type Account struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name,omitempty"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
}

// Doctor is a doctor profile.
type Doctor struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	User           *Account `json:"user,omitempty"`
}

func (d Doctor) EntityID() int64 { return d.ID }

// Patient is a patient profile.
type Patient struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	PhoneNumber string   `json:"phone_number"`
	User        *Account `json:"user,omitempty"`
}

func (p Patient) EntityID() int64 { return p.ID }

// Slot is a doctor's own time slot.
type Slot struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsBooked  bool   `json:"is_booked"`
}

func (s Slot) EntityID() int64 { return s.ID }

// AvailableSlot is an unbooked slot as listed to patients.
type AvailableSlot struct {
	ID             int64  `json:"id"`
	DoctorName     string `json:"doctor_name"`
	Specialization string `json:"specialization"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
}

func (s AvailableSlot) EntityID() int64 { return s.ID }

// Appointment is a booked appointment. Depending on who lists it, either
// DoctorName or PatientName is populated.
type Appointment struct {
	ID          int64             `json:"id"`
	DoctorName  string            `json:"doctor_name,omitempty"`
	PatientName string            `json:"patient_name,omitempty"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Status      AppointmentStatus `json:"status"`
}

func (a Appointment) EntityID() int64 { return a.ID }

// Heartbeat is the keep-alive response.
type Heartbeat struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Alive reports whether the backend answered the ping as expected.
func (h Heartbeat) Alive() bool { return h.Status == "alive" }

// ChatMessage is one entry of the support chat transcript.
type ChatMessage struct {
	Text   string `json:"text"`
	Sender string `json:"sender"`
}

const (
	SenderUser = "user"
	SenderBot  = "bot"
)
