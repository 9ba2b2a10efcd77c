package cmd

import "errors"

// errNoCommand signals that the operator supplied nothing to run remotely.
var errNoCommand = errors.New("no command arguments supplied; pass the cec-ctl arguments to run remotely")

// splitArgs separates the local --config/-c flag from the arguments destined
// for the remote cec-ctl invocation. Flag parsing is done by hand because
// every other argument, flags included, must pass through verbatim.
func splitArgs(args []string) (configPath string, remote []string, err error) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--config" || a == "-c" {
			if i+1 >= len(args) {
				return "", nil, codedErrorf(exitConfigFlagBare, "%s requires a path argument", a)
			}
			configPath = args[i+1]
			i++
			continue
		}
		remote = append(remote, a)
	}
	if len(remote) == 0 {
		return "", nil, &exitCodeError{code: exitNoCommand, err: errNoCommand}
	}
	return configPath, remote, nil
}
