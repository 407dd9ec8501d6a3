package consent

import (
	"fmt"

	"github.com/Ben62534/Shadowstrengthwebsite/internal/domain"
)

type category struct {
	storageKey string
	disclosure domain.Disclosure
}

// categories drives the gate; adding a form is a new entry here.
var categories = map[domain.ConsentCategory]category{
	domain.ConsentCheckout: {
		storageKey: "shadowStrengthCheckoutConsent",
		disclosure: domain.Disclosure{
			Category:    domain.ConsentCheckout,
			Title:       "Checkout Data Consent",
			Description: "We need to collect and store your delivery and payment information to process your order.",
			DataCollected: []string{
				"Full name and email address",
				"Delivery address and phone number",
				"Payment card details (encrypted)",
				"Order history and preferences",
			},
		},
	},
	domain.ConsentSubmission: {
		storageKey: "shadowStrengthSubmissionConsent",
		disclosure: domain.Disclosure{
			Category:    domain.ConsentSubmission,
			Title:       "Design Submission Consent",
			Description: "To process your design submission, we need to collect and store your contact information.",
			DataCollected: []string{
				"Your name and email address",
				"Design files and descriptions",
				"Submission date and status",
				"Communication history",
			},
		},
	},
	domain.ConsentContact: {
		storageKey: "shadowStrengthContactConsent",
		disclosure: domain.Disclosure{
			Category:    domain.ConsentContact,
			Title:       "Contact Form Consent",
			Description: "We need to store your message and contact details to respond to your inquiry.",
			DataCollected: []string{
				"Your name and email address",
				"Subject and message content",
				"Communication history",
				"Response tracking data",
			},
		},
	},
}

func ParseCategory(s string) (domain.ConsentCategory, error) {
	c := domain.ConsentCategory(s)
	if _, err := lookup(c); err != nil {
		return "", err
	}
	return c, nil
}

func lookup(c domain.ConsentCategory) (category, error) {
	cat, ok := categories[c]
	if !ok {
		return category{}, fmt.Errorf("category[%s]: %w", c, domain.ErrUnknownConsentCategory)
	}
	return cat, nil
}
