package vis

import "errors"

// ErrNotUpdated is returned (wrapped) when a pipeline output is read before
// its producer was updated, or after its parameters changed without a new
// Update. Pipeline stages never hand out empty or stale data silently.
var ErrNotUpdated = errors.New("vis: output read before Update")
