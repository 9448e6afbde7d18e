package errs

import (
	"errors"
)

// Gateway sentinel values. The repos translate these into the degradation
// behavior the admin console expects: unavailability is silent, call
// failures surface as non-blocking warnings.
var (
	ErrNotFound           = errors.New("not found")
	ErrStoreUnavailable   = errors.New("document store not configured")
	ErrStorageUnavailable = errors.New("blob storage not configured")
	ErrCloudSaveFailed    = errors.New("cloud save failed, kept local copy")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
