package cmd

import "fmt"

// Exit codes form the stable external contract of the CLI. Each fatal error
// category maps to exactly one code; best-effort failures never surface here.
const (
	exitOK              = 0
	exitNoCommand       = 1 // no command arguments supplied
	exitConfigFlagBare  = 2 // --config given without a following path
	exitConfigNotFound  = 3 // explicit config path does not exist
	exitConfigSearch    = 4 // no config file found via search
	exitConfigInvalid   = 5 // config file unreadable or unparseable
	exitConnectFailed   = 6 // transport connect failure
	exitShellOpenFailed = 7 // interactive shell could not be opened
	exitDispatchFailed  = 8 // command dispatch write failed
)

// exitCodeError carries the process exit code alongside the underlying error.
// Execute unwraps it and hands the code to exitFunc.
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string { return e.err.Error() }

func (e *exitCodeError) Unwrap() error { return e.err }

// codedErrorf builds an exitCodeError from a formatted message.
func codedErrorf(code int, format string, args ...any) error {
	return &exitCodeError{code: code, err: fmt.Errorf(format, args...)}
}
