package httpserver

import (
	"errors"
	"net/http"

	"github.com/Ben62534/Shadowstrengthwebsite/internal/domain"
)

var statusByError = []struct {
	err    error
	status int
}{
	{domain.ErrUnknownProduct, http.StatusNotFound},
	{domain.ErrNoCheckout, http.StatusNotFound},
	{domain.ErrInvalidSize, http.StatusBadRequest},
	{domain.ErrQuantityOutOfRange, http.StatusBadRequest},
	{domain.ErrMissingField, http.StatusBadRequest},
	{domain.ErrInvalidDecision, http.StatusBadRequest},
	{domain.ErrUnknownConsentCategory, http.StatusBadRequest},
	{domain.ErrUnknownView, http.StatusBadRequest},
	{domain.ErrConsentRequired, http.StatusConflict},
	{domain.ErrInvalidStep, http.StatusConflict},
	{domain.ErrEmptyCart, http.StatusConflict},
	{domain.ErrSessionClosed, http.StatusConflict},
	{domain.ErrFormSubmitted, http.StatusConflict},
	{domain.ErrInvalidPriceFormat, http.StatusUnprocessableEntity},
	{domain.ErrCurrencyMismatch, http.StatusUnprocessableEntity},
}

func statusFor(err error) int {
	for _, e := range statusByError {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
