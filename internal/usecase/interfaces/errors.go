package interfaces

import "errors"

// ErrConcurrentModification is returned by repositories when a write is conditioned on a
// version that is no longer current. Callers may reload and retry.
var ErrConcurrentModification = errors.New("estimation was modified concurrently")

// ErrAlreadyExists is returned by repositories when a create collides with an existing key.
var ErrAlreadyExists = errors.New("record already exists")
