package lookup

import "fmt"

// State is the step a lookup is currently in
type State int32

const (
	StateIdle State = iota
	StateResolvingLocation
	StateResolvingTimezone
	StateFetchingWeather
	StatePersisting
	StateRendering
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateResolvingLocation:
		return "Resolving-Location"
	case StateResolvingTimezone:
		return "Resolving-Timezone"
	case StateFetchingWeather:
		return "Fetching-Weather"
	case StatePersisting:
		return "Normalizing/Persisting"
	case StateRendering:
		return "Rendering"
	default:
		return fmt.Sprintf("Unknown (%d)", int32(s))
	}
}
