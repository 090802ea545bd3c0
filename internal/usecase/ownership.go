package usecase

// loadOwned fetches a resource and enforces that caller owns it.
// Existence is checked before ownership: missing resources surface
// ErrNotFound, foreign ones ErrForbidden.
func loadOwned[T any](load func(string) (T, error), ownerOf func(T) string, id, callerID string) (T, error) {
	resource, err := load(id)
	if err != nil {
		var zero T
		return zero, asStorageError(err)
	}
	if ownerOf(resource) != callerID {
		var zero T
		return zero, ErrForbidden
	}
	return resource, nil
}
