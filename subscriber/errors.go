package subscriber

// ValidationError reports a malformed or policy-inconsistent subscriber
// record. It is not retriable; the provisioning data must be corrected.
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *ValidationError) Unwrap() error { return e.Err }
