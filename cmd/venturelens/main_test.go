package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredictionFailError(t *testing.T) {
	err := &PredictionFailError{
		Message: "prediction: fail (final score 0.210, threshold 0.304)",
	}

	assert.Equal(t, "prediction: fail (final score 0.210, threshold 0.304)", err.Error())
}

func TestErrorTypeDetection(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType string
	}{
		{
			name:     "PredictionFailError",
			err:      &PredictionFailError{Message: "fail label"},
			wantType: "PredictionFailError",
		},
		{
			name:     "regular error",
			err:      errors.New("config error"),
			wantType: "other",
		},
		{
			name:     "wrapped PredictionFailError",
			err:      errors.Join(&PredictionFailError{Message: "fail label"}, errors.New("additional context")),
			wantType: "PredictionFailError",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var failErr *PredictionFailError
			isFail := errors.As(tt.err, &failErr)

			if tt.wantType == "PredictionFailError" {
				assert.True(t, isFail, "expected error to be detected as PredictionFailError")
			} else {
				assert.False(t, isFail, "expected error NOT to be detected as PredictionFailError")
			}
		})
	}
}
