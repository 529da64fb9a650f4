package domain

// Phase is the lifecycle stage of a document's lookup.
type Phase string

const (
	PhaseIdle    Phase = "IDLE"
	PhaseLoading Phase = "LOADING"
	PhaseSuccess Phase = "SUCCESS"
	PhaseError   Phase = "ERROR"
)

// UIState is the client-owned view state. Order is set only in PhaseSuccess,
// Message only in PhaseError.
type UIState struct {
	Phase   Phase        `json:"phase"`
	Order   *OrderRecord `json:"order,omitempty"`
	Message string       `json:"message,omitempty"`
}

// Idle is the state before any submission.
func Idle() UIState { return UIState{Phase: PhaseIdle} }

// Loading is the state between reset and resolution.
func Loading() UIState { return UIState{Phase: PhaseLoading} }

// Succeeded holds the rendered record.
func Succeeded(order *OrderRecord) UIState { return UIState{Phase: PhaseSuccess, Order: order} }

// Failed holds the displayed error message.
func Failed(message string) UIState { return UIState{Phase: PhaseError, Message: message} }
