package broadcaster

// State is a stage of a broadcast run.
type State int

// Broadcast states, in order of a run.
const (
	Idle State = iota
	Resolving
	Submitting
	Polling
	DoneNoPoll
	Done
)

var stateNames = map[State]string{
	Idle:       "idle",
	Resolving:  "resolving",
	Submitting: "submitting",
	Polling:    "polling",
	DoneNoPoll: "done-no-poll",
	Done:       "done",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}

	return "unknown"
}
