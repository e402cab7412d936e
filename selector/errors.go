package selector

import "errors"

// ErrNoItemsAvailable is returned by Select when called on a trait whose
// items_used already contains every item in that trait's bank subset.
// The Controller must ensure this never happens for a non-done trait;
// seeing it surface indicates a Controller bug.
var ErrNoItemsAvailable = errors.New("selector: no items available for trait")
