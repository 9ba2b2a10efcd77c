package cmd

import (
	"io"
	"os"
)

// interruptByte is the control byte interactive programs interpret as Ctrl+C.
const interruptByte = 0x03

// forwardInterrupts delivers each local interrupt as a single interrupt byte
// written to the open remote channel. Forwarding is a courtesy, not a
// guaranteed delivery: write failures are swallowed and the loop keeps
// serving later interrupts until shutdown. The forwarder never terminates
// the local process itself.
func forwardInterrupts(sigs <-chan os.Signal, ch io.Writer, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case _, ok := <-sigs:
			if !ok {
				return
			}
			_, _ = ch.Write([]byte{interruptByte})
		}
	}
}
