// File path: internal/workflow/workflow_test.go
package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHappyPath(t *testing.T) {
	step := StepUpload
	for _, event := range []Event{EventFileReceived, EventExtracted, EventSummaryOK, EventFormSubmitted} {
		next, err := Transition(step, event)
		require.NoError(t, err)
		step = next
	}
	assert.Equal(t, StepDocument, step)
}

func TestProcessingFailureReturnsToUpload(t *testing.T) {
	next, err := Transition(StepProcessing, EventFailed)
	require.NoError(t, err)
	assert.Equal(t, StepUpload, next)
}

func TestBackwardNavigation(t *testing.T) {
	next, err := Transition(StepDocument, EventBackToForm)
	require.NoError(t, err)
	assert.Equal(t, StepForm, next)

	next, err = Transition(StepForm, EventBackToSummary)
	require.NoError(t, err)
	assert.Equal(t, StepSummary, next)
}

func TestStartOver(t *testing.T) {
	for _, from := range []Step{StepSummary, StepForm, StepDocument} {
		next, err := Transition(from, EventStartOver)
		require.NoError(t, err)
		assert.Equal(t, StepUpload, next)
	}
}

func TestIllegalTransitions(t *testing.T) {
	_, err := Transition(StepUpload, EventFormSubmitted)
	assert.Error(t, err)

	_, err = Transition(StepUpload, EventExtracted)
	assert.Error(t, err, "extraction cannot complete before a file arrives")

	_, err = Transition(Step("nonsense"), EventFileReceived)
	assert.Error(t, err)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(StepSummary))
	assert.False(t, Valid(Step("checkout")))
}
