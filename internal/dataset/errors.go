package dataset

import "errors"

// ErrUniqueExhausted is returned when the generator cannot produce a
// required unique value within its attempt budget.
var ErrUniqueExhausted = errors.New("unique value space exhausted")
