package session

import (
	"fmt"

	"github.com/Great2008/reads-web-app/internal/gateway"
)

// ErrPasswordMismatch is raised by Signup when the password and its
// confirmation differ. It is a local pre-check: no network call is made.
// It classifies as a validation error via errors.Is(err, gateway.ErrValidation).
var ErrPasswordMismatch = fmt.Errorf("password confirmation does not match: %w", gateway.ErrValidation)
