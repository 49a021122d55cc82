package services

// OutcomeKind classifies how a request that did not fail unexpectedly ended.
type OutcomeKind int

const (
	OutcomeAccepted OutcomeKind = iota
	OutcomeRejected
	OutcomeMissingField
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeRejected:
		return "rejected"
	case OutcomeMissingField:
		return "missing_field"
	default:
		return "unknown"
	}
}

// Outcome is the result of a signup, login or relay call. Unexpected
// failures are reported as errors instead.
type Outcome struct {
	Kind OutcomeKind
	// Message is the user-facing text: the success message, the rejection
	// reason, or, for the relay, the model's answer.
	Message string
	// ModelResponse is the raw generator output, empty when no call was made.
	ModelResponse string
}

func (o Outcome) Accepted() bool {
	return o.Kind == OutcomeAccepted
}

func accepted(message, modelResponse string) Outcome {
	return Outcome{Kind: OutcomeAccepted, Message: message, ModelResponse: modelResponse}
}

func rejected(message, modelResponse string) Outcome {
	return Outcome{Kind: OutcomeRejected, Message: message, ModelResponse: modelResponse}
}

func missingField(message string) Outcome {
	return Outcome{Kind: OutcomeMissingField, Message: message}
}
