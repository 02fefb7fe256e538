package mython

import "github.com/google/uuid"

// newIdentity mints an implementation-defined identity string for an
// instance that has no __str__ method, used by the default printer as
// "<ClassName at identity>". Callers must not assume any particular format
// beyond uniqueness across instances.
func newIdentity() string {
	return uuid.NewString()
}
