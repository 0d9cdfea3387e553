package orchestrator

import (
	"errors"
	"fmt"
)

// ErrEmptyTopic is returned by Run before any stage starts when the topic is
// blank.
var ErrEmptyTopic = errors.New("pipeline: topic is empty")

// StageError identifies the stage that aborted a run.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline: stage %d (%s) failed: %v", int(e.Stage), e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// FailedStage reports the stage named by a *StageError anywhere in err's
// chain.
func FailedStage(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return 0, false
}
