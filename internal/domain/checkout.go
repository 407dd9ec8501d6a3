package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/google/uuid"
)

type CheckoutStep string

const (
	StepDelivery CheckoutStep = "delivery"
	StepPayment  CheckoutStep = "payment"
	StepComplete CheckoutStep = "complete"
)

// Next returns the step that follows s. Complete is terminal.
func (s CheckoutStep) Next() (CheckoutStep, bool) {
	switch s {
	case StepDelivery:
		return StepPayment, true
	case StepPayment:
		return StepComplete, true
	}
	return s, false
}

type DeliveryInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Phone    string `json:"phone"`
}

// Validate checks presence only.
func (d DeliveryInfo) Validate() error {
	return requireFields(map[string]string{
		"fullName": d.FullName,
		"email":    d.Email,
		"address":  d.Address,
		"city":     d.City,
		"state":    d.State,
		"zipCode":  d.ZipCode,
		"phone":    d.Phone,
	})
}

// PaymentInfo is collected but never checked beyond presence; payment is simulated.
type PaymentInfo struct {
	CardNumber string `json:"cardNumber"`
	CardName   string `json:"cardName"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

func (p PaymentInfo) Validate() error {
	return requireFields(map[string]string{
		"cardNumber": p.CardNumber,
		"cardName":   p.CardName,
		"expiryDate": p.ExpiryDate,
		"cvv":        p.CVV,
	})
}

type OrderSummary struct {
	OrderID   uuid.UUID      `json:"orderId"`
	Items     []CartLineItem `json:"items"`
	ItemCount int            `json:"itemCount"`
	Total     string         `json:"total"`
	Email     string         `json:"email,omitempty"`
}

func requireFields(fields map[string]string) error {
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		if strings.TrimSpace(fields[name]) == "" {
			errs = append(errs, fmt.Errorf("%s: %w", name, ErrMissingField))
		}
	}
	return errors.Join(errs...)
}
