package shared

import "storefront/internal/pkg/errs"

// ErrSessionNotFound covers unknown and expired sessions alike.
var ErrSessionNotFound = errs.New("session not found")
