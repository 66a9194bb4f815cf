package availability

import (
	"errors"
	"fmt"
	"hotel/shared/failure"
)

var (
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
	ErrLeadTimeTooShort = errors.New("check-in date is too soon")
	ErrRoomTypeNotFound = errors.New("room type not found")
	ErrGuestNotFound    = errors.New("guest not found")
	ErrStoreUnavailable = errors.New("booking store unavailable")
)

// storeFailure passes failures through and reports anything else as an unavailable store.
func storeFailure(err error) error {
	var fail *failure.Failure
	if errors.As(err, &fail) {
		return err
	}

	return failure.ServiceUnavailableWithMessage(ErrStoreUnavailable.Error(), fmt.Errorf("%w: %w", ErrStoreUnavailable, err)) // nolint:wrapcheck
}
