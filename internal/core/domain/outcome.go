package domain

// OutcomeKind tags the result of a slice operation.
type OutcomeKind int

const (
	OutcomeOK OutcomeKind = iota
	OutcomeFailed
	OutcomeNeedsProfileSetup
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeOK:
		return "ok"
	case OutcomeFailed:
		return "failed"
	case OutcomeNeedsProfileSetup:
		return "needs_profile_setup"
	default:
		return "unknown"
	}
}

// Outcome is what every slice operation resolves to. A NeedsProfileSetup
// outcome is a redirect signal for the caller; the slice does not record it
// as an error.
type Outcome struct {
	Kind    OutcomeKind
	Message string
	// Status is the backend's HTTP status for a failure it answered, and 0
	// when the request never got a response.
	Status int
}

func OK() Outcome { return Outcome{Kind: OutcomeOK} }

func Failed(message string) Outcome { return Outcome{Kind: OutcomeFailed, Message: message} }

// FailedFrom is Failed carrying the backend status of err, if any.
func FailedFrom(err error, message string) Outcome {
	out := Failed(message)
	out.Status = ServerStatus(err)
	return out
}

func NeedsProfileSetup(message string) Outcome {
	return Outcome{Kind: OutcomeNeedsProfileSetup, Message: message}
}

func (o Outcome) Succeeded() bool { return o.Kind == OutcomeOK }
