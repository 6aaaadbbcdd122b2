package runner

// Stage names the pipeline step an error came from.
type Stage string

const (
	StageConfig   Stage = "config"
	StageConnect  Stage = "connect"
	StageTraverse Stage = "traverse"
	StageDeliver  Stage = "deliver"
)

// StageError tags a fatal error with the stage that produced it.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return string(e.Stage) + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}
