package repair

import "github.com/pkg/errors"

// ErrPreconditionViolated is returned when Thresholds or an Option
// carries an out-of-range value: a non-positive needle ratio, a cap
// angle cosine outside [-1, 1], or a non-positive collapse length cap.
var ErrPreconditionViolated = errors.New("repair: precondition violated")

// wrapPrecondition attaches reason to ErrPreconditionViolated so
// callers can still match with errors.Is while getting a specific
// message.
func wrapPrecondition(reason string) error {
	return errors.Wrap(ErrPreconditionViolated, reason)
}
