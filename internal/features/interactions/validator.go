package interactions

import "fmt"

var validActions = map[string]bool{
	ActionView:  true,
	ActionClick: true,
	ActionLike:  true,
	ActionSave:  true,
	ActionShare: true,
}

// ValidateLogRequest checks the action vocabulary and duration bounds.
func ValidateLogRequest(req *LogRequest) error {
	if !validActions[req.Action] {
		return fmt.Errorf("unknown action %q", req.Action)
	}
	if req.Duration < 0 {
		return fmt.Errorf("duration must be non-negative")
	}
	return nil
}
