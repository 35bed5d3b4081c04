package booking

import "errors"

var (
	// ErrPackageUnavailable covers both a missing package and a
	// soft-deactivated one; callers see a single 400.
	ErrPackageUnavailable = errors.New("package not found or inactive")

	// ErrNotFound is returned when a booking does not exist or is not
	// owned by the requesting user.
	ErrNotFound = errors.New("booking not found or unauthorized")

	// ErrNotCancellable is returned when the owner tries to cancel a
	// booking that already left the pending state.
	ErrNotCancellable = errors.New("only pending bookings can be cancelled")

	// ErrInvalidStatus is returned for admin status values outside the
	// allowed transitions.
	ErrInvalidStatus = errors.New("invalid booking status")
)
