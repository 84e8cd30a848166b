package display

type State int

const (
	StateUninitialized State = iota
	StateAwaitingDelivery
	StatePopulated
	StateTornDown
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateAwaitingDelivery:
		return "awaiting_delivery"
	case StatePopulated:
		return "populated"
	case StateTornDown:
		return "torn_down"
	default:
		return "unknown"
	}
}
