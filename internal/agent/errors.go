package agent

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when a stage is given nothing to work on.
var ErrEmptyInput = errors.New("empty input")

// ServiceError reports a failed call to the text-generation service.
type ServiceError struct {
	Role Role
	Err  error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s agent: service error: %v", e.Role, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
