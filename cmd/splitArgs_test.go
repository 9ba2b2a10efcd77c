package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitArgs_PassThrough(t *testing.T) {
	path, remote, err := splitArgs([]string{"-d", "/dev/cec1", "-M"})
	require.NoError(t, err)
	require.Empty(t, path)
	require.Equal(t, []string{"-d", "/dev/cec1", "-M"}, remote)
}

func TestSplitArgs_ConfigExtracted(t *testing.T) {
	path, remote, err := splitArgs([]string{"--config", "/etc/cec-ssh.json", "-d", "/dev/cec1"})
	require.NoError(t, err)
	require.Equal(t, "/etc/cec-ssh.json", path)
	require.Equal(t, []string{"-d", "/dev/cec1"}, remote)
}

func TestSplitArgs_ShortFlagAnywhere(t *testing.T) {
	path, remote, err := splitArgs([]string{"-M", "-c", "conf.json", "-d", "/dev/cec0"})
	require.NoError(t, err)
	require.Equal(t, "conf.json", path)
	require.Equal(t, []string{"-M", "-d", "/dev/cec0"}, remote)
}

func TestSplitArgs_ConfigWithoutValue(t *testing.T) {
	_, _, err := splitArgs([]string{"-d", "/dev/cec1", "--config"})
	require.Error(t, err)
	var ce *exitCodeError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, exitConfigFlagBare, ce.code)
}

func TestSplitArgs_NoCommand(t *testing.T) {
	_, _, err := splitArgs(nil)
	var ce *exitCodeError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, exitNoCommand, ce.code)

	_, _, err = splitArgs([]string{"--config", "conf.json"})
	require.ErrorAs(t, err, &ce)
	require.Equal(t, exitNoCommand, ce.code)
}
