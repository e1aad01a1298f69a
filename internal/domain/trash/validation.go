package trash

// ValidateTransition validates a requested lifecycle transition.
func ValidateTransition(from, to State) error {
	valid := false
	switch from {
	case StateActive:
		valid = to == StateTrashed
	case StateTrashed:
		valid = to == StateActive || to == StatePurged
	}

	if !valid {
		return ErrInvalidTransition
	}
	return nil
}
