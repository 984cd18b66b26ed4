package ports

// LoginInput carries the credentials posted to /login/.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterInput is the signup payload. Role selects the patient or doctor flow.
type RegisterInput struct {
	FirstName       string `json:"first_name,omitempty"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	Role            string `json:"role"`
}

// DoctorProfileInput completes a doctor account.
type DoctorProfileInput struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
}

// PatientProfileInput completes a patient account.
type PatientProfileInput struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// SlotInput describes a new slot. Date is YYYY-MM-DD, times are HH:MM[:SS].
type SlotInput struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// AdminDoctorInput attaches a doctor profile to an existing doctor user.
type AdminDoctorInput struct {
	UserID         int64  `json:"user_id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
}

// DoctorPatch is a partial doctor update; nil fields are left untouched.
type DoctorPatch struct {
	Name           *string `json:"name,omitempty"`
	Specialization *string `json:"specialization,omitempty"`
}

// AdminPatientInput attaches a patient profile to an existing patient user.
type AdminPatientInput struct {
	UserID      int64  `json:"user_id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// PatientPatch is a partial patient update; nil fields are left untouched.
type PatientPatch struct {
	Name        *string `json:"name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

// ChatRequest is one support-chat turn. SessionID is omitted on the first turn.
type ChatRequest struct {
	Query     string `json:"query"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatReply is the bot's answer. SessionID is issued by the server.
type ChatReply struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id,omitempty"`
}
