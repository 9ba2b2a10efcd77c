package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "cec-ssh [--config path] <cec-ctl arguments>",
	Short: "Run a cec-ctl command on a remote host over SSH",
	Long: "Connects to a remote host over SSH, runs a single cec-ctl command on an interactive " +
		"shell, streams the remote output to the local terminal, and forwards Ctrl+C to the " +
		"remote process instead of terminating locally.",
	Version: Version,
	// Everything except --config must pass through verbatim to the remote
	// cec-ctl, so flag parsing is done by hand in splitArgs.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			switch args[0] {
			case "--help", "-h":
				return cmd.Help()
			case "--version":
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", cmd.Name(), Version)
				return nil
			}
		}

		configPath, remoteArgs, err := splitArgs(args)
		if err != nil {
			return err
		}
		if configPath == "" {
			configPath = viper.GetString("config")
		}

		cfg, err := resolveConfigFunc(configPath)
		if err != nil {
			return err
		}

		command := buildRemoteCommand(remoteArgs)

		// Interrupts are forwarded to the remote side for the duration of
		// the run; Notify keeps the first Ctrl+C from killing us locally.
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt)
		defer signal.Stop(sigCh)

		bridge := newSessionBridge(newTransportFunc(cfg), os.Stdout)
		return bridge.run(command, sigCh)
	},
}
