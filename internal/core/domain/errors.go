package domain

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrPhoneNotFound       = errors.New("phone number not found")
	ErrTestimonialNotFound = errors.New("testimonial not found")
	ErrForbidden           = errors.New("forbidden")

	// ErrStoreUnavailable is returned by every repository call when the
	// process started without a usable database connection.
	ErrStoreUnavailable = errors.New("document store unavailable")
)
