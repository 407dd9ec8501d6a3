package domain

import "errors"

var (
	// ErrInvalidPriceFormat indicates a price string that is not "<symbol><decimal>".
	ErrInvalidPriceFormat = errors.New("invalid price format")
	// ErrQuantityOutOfRange indicates a line quantity outside [MinQuantity, MaxQuantity].
	ErrQuantityOutOfRange = errors.New("quantity out of range")
	ErrInvalidSize        = errors.New("invalid size")
	ErrCurrencyMismatch   = errors.New("currency mismatch")

	// ErrConsentRequired is returned when a submission is held back until the
	// consent prompt is answered.
	ErrConsentRequired        = errors.New("consent required")
	ErrUnknownConsentCategory = errors.New("unknown consent category")
	ErrInvalidDecision        = errors.New("invalid consent decision")

	ErrInvalidStep    = errors.New("invalid checkout step")
	ErrEmptyCart      = errors.New("cart is empty")
	ErrNoCheckout     = errors.New("no checkout in progress")
	ErrSessionClosed  = errors.New("session closed")
	ErrMissingField   = errors.New("missing required field")
	ErrFormSubmitted  = errors.New("form already submitted")
	ErrUnknownProduct = errors.New("unknown product")
	ErrUnknownView    = errors.New("unknown view")
)
