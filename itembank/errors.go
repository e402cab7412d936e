package itembank

import "errors"

// Validation errors raised while loading or constructing a Bank. All are
// fatal at startup: a malformed bank is a configuration error, not a
// recoverable runtime condition.
var (
	// ErrInvalidItem classifies any single malformed row: alpha <= 0, a beta
	// not finite, or a trait outside the canonical six. (Item.Beta is a
	// fixed-length array of six, so its length is never checked.)
	ErrInvalidItem = errors.New("itembank: invalid item")

	// ErrDuplicateItem indicates the same item number appears more than once.
	ErrDuplicateItem = errors.New("itembank: duplicate item number")

	// ErrBankIncomplete indicates the loaded items do not partition into
	// exactly four items per canonical trait.
	ErrBankIncomplete = errors.New("itembank: trait partition incomplete")
)
