package orient

import "github.com/pkg/errors"

// ErrPreconditionViolated is returned when k < 2, the propagation angle
// is outside (0, π/2], or the point set is empty.
var ErrPreconditionViolated = errors.New("orient: precondition violated")

func wrapPrecondition(reason string) error {
	return errors.Wrap(ErrPreconditionViolated, reason)
}
