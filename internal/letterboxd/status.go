package letterboxd

// State is the phase the feed widget is in.
type State int

const (
	StateLoading State = iota
	StateError
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Status is the widget state. Message is set only in StateError and Viewings
// only in StateReady.
type Status struct {
	State    State
	Message  string
	Viewings []MovieViewing
}

func StatusLoading() Status { return Status{State: StateLoading} }

func StatusError(msg string) Status { return Status{State: StateError, Message: msg} }

func StatusReady(v []MovieViewing) Status { return Status{State: StateReady, Viewings: v} }

func (s Status) IsLoading() bool { return s.State == StateLoading }
func (s Status) IsError() bool   { return s.State == StateError }
func (s Status) IsReady() bool   { return s.State == StateReady }

// reload is the retry/refresh transition. Only settled states can reload;
// a status already loading is returned as is.
func (s Status) reload() Status {
	if s.IsLoading() {
		return s
	}
	return StatusLoading()
}
