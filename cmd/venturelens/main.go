package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different outcomes
const (
	ExitPass  = 0 // Prediction succeeded with a pass label
	ExitFail  = 1 // Prediction succeeded with a fail label
	ExitError = 2 // Configuration or runtime error
)

// PredictionFailError indicates that the prediction itself completed,
// but the startup was labeled fail. Callers scripting around the CLI
// distinguish this from runtime errors by exit code.
type PredictionFailError struct {
	Message string
}

func (e *PredictionFailError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check error type to determine exit code
		var failErr *PredictionFailError
		if errors.As(err, &failErr) {
			os.Exit(ExitFail)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
