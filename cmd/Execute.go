package cmd

import (
	"errors"
	"fmt"
	"os"
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		var ce *exitCodeError
		if errors.As(err, &ce) {
			exitFunc(ce.code)
			return
		}
		exitFunc(1)
		return
	}
}
