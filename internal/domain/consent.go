package domain

import "fmt"

type ConsentCategory string

const (
	ConsentCheckout   ConsentCategory = "checkout"
	ConsentSubmission ConsentCategory = "submission"
	ConsentContact    ConsentCategory = "contact"
)

// ConsentDecision values double as the literal strings kept in client storage.
type ConsentDecision string

const (
	ConsentAccepted ConsentDecision = "accepted"
	ConsentDeclined ConsentDecision = "declined"
)

func ParseConsentDecision(s string) (ConsentDecision, error) {
	switch d := ConsentDecision(s); d {
	case ConsentAccepted, ConsentDeclined:
		return d, nil
	}
	return "", fmt.Errorf("decision[%s] is not valid: %w", s, ErrInvalidDecision)
}

// Disclosure is the content of the consent prompt for one form category.
type Disclosure struct {
	Category      ConsentCategory `json:"category"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	DataCollected []string        `json:"dataCollected"`
}
