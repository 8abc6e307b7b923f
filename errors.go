// SPDX-License-Identifier: EPL-2.0

package speechpipe

import "errors"

// ErrBusy is returned by Speak when a generation for the same session
// is already in flight. Concurrent runs are rejected rather than
// queued, so two generations can never race to install a handle.
var ErrBusy = errors.New("a generation is already in flight")
