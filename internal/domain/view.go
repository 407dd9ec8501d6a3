package domain

import "fmt"

type View string

const (
	ViewHome        View = "home"
	ViewAbout       View = "about"
	ViewSubmissions View = "submissions"
	ViewShop        View = "shop"
	ViewContact     View = "contact"
	ViewCheckout    View = "checkout"
)

// ParseView accepts every view except checkout, which is only entered through BeginCheckout.
func ParseView(s string) (View, error) {
	switch v := View(s); v {
	case ViewHome, ViewAbout, ViewSubmissions, ViewShop, ViewContact:
		return v, nil
	}
	return "", fmt.Errorf("view[%s]: %w", s, ErrUnknownView)
}
