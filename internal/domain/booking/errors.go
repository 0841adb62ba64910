package booking

import "errors"

var (
	ErrNotAtFinalStep     = errors.New("booking can only be submitted from the emergency contact step")
	ErrSubmitInFlight     = errors.New("a submission is already in flight")
	ErrAlreadyAtLastStep  = errors.New("already at the last step")
	ErrAlreadyAtFirstStep = errors.New("already at the first step")
)
