package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// resolveConfig locates and parses the connection config. An explicit path
// must exist as given; with no explicit path the fixed filename is probed in
// the current working directory and then in each PATH entry, in order. The
// first existing file wins. Probe errors (missing dir, permissions) simply
// skip that entry.
func resolveConfig(explicitPath string) (*connectionConfig, error) {
	path := explicitPath
	if path == "" {
		found, tried := searchConfig()
		if found == "" {
			return nil, codedErrorf(exitConfigSearch,
				"no %s found; tried:\n  %s", configFileName, strings.Join(tried, "\n  "))
		}
		path = found
	} else if _, err := os.Stat(path); err != nil {
		return nil, codedErrorf(exitConfigNotFound, "config file not found: %s", path)
	}
	return loadConfig(path)
}

// searchConfig probes the documented search order and returns the first hit
// along with every path attempted, in order, for diagnostics.
func searchConfig() (found string, tried []string) {
	candidates := []string{configFileName}
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		candidates = append(candidates, filepath.Join(dir, configFileName))
	}
	for _, p := range candidates {
		tried = append(tried, p)
		if found == "" {
			if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
				found = p
			}
		}
	}
	return found, tried
}

// loadConfig parses a JSON config file. Viper matches field names
// case-insensitively, so HOST/Host/host all land on the same key.
func loadConfig(path string) (*connectionConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault("port", 22)
	if err := v.ReadInConfig(); err != nil {
		return nil, &exitCodeError{code: exitConfigInvalid,
			err: fmt.Errorf("failed to read config %s: %w", path, err)}
	}

	cfg := &connectionConfig{
		Host:          v.GetString("host"),
		Port:          v.GetInt("port"),
		Username:      v.GetString("username"),
		Password:      v.GetString("password"),
		KeyFile:       v.GetString("key_file"),
		Passphrase:    v.GetString("passphrase"),
		KnownHosts:    v.GetString("known_hosts"),
		StrictHostKey: v.GetBool("strict_host_key"),
		Timeout:       v.GetDuration("timeout"),
	}

	for field, val := range map[string]string{
		"host":     cfg.Host,
		"username": cfg.Username,
	} {
		if val == "" {
			return nil, codedErrorf(exitConfigInvalid, "config %s: missing required field %q", path, field)
		}
	}
	if cfg.Password == "" && cfg.KeyFile == "" {
		return nil, codedErrorf(exitConfigInvalid, "config %s: missing required field %q", path, "password")
	}
	return cfg, nil
}
