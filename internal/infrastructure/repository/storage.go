package repository

import "fixit/internal/shared/errors"

// wrapStorage reports any persistence failure inside an operation under that operation's name,
// e.g. "Failed to update status". Domain errors pass through unchanged.
func wrapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.IsAppError(err) {
		return err
	}
	if storageErr := errors.GetStorageError(err); storageErr != nil {
		return errors.NewStorageError(op, storageErr.Err)
	}
	return errors.NewStorageError(op, err)
}
