// File path: internal/workflow/workflow.go

// Package workflow models the stepper the client walks an operation
// through, from upload to the generated declaration document.
package workflow

import "fmt"

// Step is one screen of the operation flow.
type Step string

const (
	StepUpload     Step = "upload"
	StepProcessing Step = "processing"
	StepSummary    Step = "summary"
	StepForm       Step = "form"
	StepDocument   Step = "document"
)

// Event advances or rewinds the flow.
type Event string

const (
	EventFileReceived   Event = "file_received"
	EventExtracted      Event = "extracted"
	EventFailed         Event = "failed"
	EventSummaryOK      Event = "summary_confirmed"
	EventFormSubmitted  Event = "form_submitted"
	EventBackToSummary  Event = "back_to_summary"
	EventBackToForm     Event = "back_to_form"
	EventStartOver      Event = "start_over"
)

var transitions = map[Step]map[Event]Step{
	StepUpload: {
		EventFileReceived: StepProcessing,
	},
	StepProcessing: {
		EventExtracted: StepSummary,
		// Extraction failure drops the user back to upload so a
		// better document can be tried.
		EventFailed: StepUpload,
	},
	StepSummary: {
		EventSummaryOK: StepForm,
		EventStartOver: StepUpload,
	},
	StepForm: {
		EventFormSubmitted: StepDocument,
		EventBackToSummary: StepSummary,
		EventStartOver:     StepUpload,
	},
	StepDocument: {
		EventBackToForm: StepForm,
		EventStartOver:  StepUpload,
	},
}

// Transition applies an event to a step and returns the next step. Events
// not legal at the given step are rejected.
func Transition(from Step, event Event) (Step, error) {
	events, ok := transitions[from]
	if !ok {
		return "", fmt.Errorf("unknown step %q", from)
	}
	next, ok := events[event]
	if !ok {
		return "", fmt.Errorf("event %q not allowed at step %q", event, from)
	}
	return next, nil
}

// Valid reports whether s is a known step.
func Valid(s Step) bool {
	_, ok := transitions[s]
	return ok
}
