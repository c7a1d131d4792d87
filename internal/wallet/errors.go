package wallet

import "errors"

// ErrNegativeAmount is returned when a credit or debit is attempted with a
// negative amount. Amounts are always non-negative; direction is chosen by
// calling Credit or Debit.
var ErrNegativeAmount = errors.New("amount cannot be negative")
