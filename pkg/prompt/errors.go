package prompt

import "errors"

// ErrCancelled is returned when the user aborts a prompt with ctrl-c or an
// end-of-input signal. It is an outcome, not a failure: callers branch on it.
var ErrCancelled = errors.New("prompt cancelled")

// ErrNoOptions is returned by select prompts configured with an empty option
// list. It is detected before anything is painted.
var ErrNoOptions = errors.New("no options specified")
