package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestResolveConfig_ExplicitMissing(t *testing.T) {
	// An explicit path must exist as given; the search order is never tried.
	t.Setenv("PATH", t.TempDir())
	_, err := resolveConfig("/nonexistent/cec-ssh.json")
	var ce *exitCodeError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, exitConfigNotFound, ce.code)
	require.Contains(t, err.Error(), "/nonexistent/cec-ssh.json")
}

func TestResolveConfig_ExplicitFound(t *testing.T) {
	p := writeConfig(t, t.TempDir(), "my.json",
		`{"host":"h","port":2222,"username":"u","password":"p"}`)
	cfg, err := resolveConfig(p)
	require.NoError(t, err)
	require.Equal(t, "h", cfg.Host)
	require.Equal(t, 2222, cfg.Port)
	require.Equal(t, "u", cfg.Username)
	require.Equal(t, "p", cfg.Password)
}

func TestResolveConfig_SearchExhausted(t *testing.T) {
	cwd := t.TempDir()
	dirA := t.TempDir()
	dirB := t.TempDir()
	chdir(t, cwd)
	t.Setenv("PATH", strings.Join([]string{dirA, dirB}, string(os.PathListSeparator)))

	_, err := resolveConfig("")
	var ce *exitCodeError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, exitConfigSearch, ce.code)

	// Diagnostic lists the cwd candidate first, then each PATH entry in order.
	msg := err.Error()
	iCwd := strings.Index(msg, configFileName)
	iA := strings.Index(msg, filepath.Join(dirA, configFileName))
	iB := strings.Index(msg, filepath.Join(dirB, configFileName))
	require.GreaterOrEqual(t, iCwd, 0)
	require.Greater(t, iA, iCwd)
	require.Greater(t, iB, iA)
}

func TestResolveConfig_SearchTriedPathsComplete(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	chdir(t, t.TempDir())
	t.Setenv("PATH", strings.Join([]string{dirA, dirB}, string(os.PathListSeparator)))

	found, tried := searchConfig()
	require.Empty(t, found)
	require.Equal(t, []string{
		configFileName,
		filepath.Join(dirA, configFileName),
		filepath.Join(dirB, configFileName),
	}, tried)
}

func TestResolveConfig_SearchFindsCwdFirst(t *testing.T) {
	cwd := t.TempDir()
	dirA := t.TempDir()
	writeConfig(t, cwd, configFileName, `{"host":"local","username":"u","password":"p"}`)
	writeConfig(t, dirA, configFileName, `{"host":"path","username":"u","password":"p"}`)
	chdir(t, cwd)
	t.Setenv("PATH", dirA)

	cfg, err := resolveConfig("")
	require.NoError(t, err)
	require.Equal(t, "local", cfg.Host)
}

func TestResolveConfig_SearchFallsBackToPathEntry(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	writeConfig(t, dirB, configFileName, `{"host":"deep","username":"u","password":"p"}`)
	chdir(t, t.TempDir())
	t.Setenv("PATH", strings.Join([]string{dirA, dirB}, string(os.PathListSeparator)))

	cfg, err := resolveConfig("")
	require.NoError(t, err)
	require.Equal(t, "deep", cfg.Host)
}

func TestLoadConfig_CaseInsensitiveFields(t *testing.T) {
	p := writeConfig(t, t.TempDir(), "c.json",
		`{"HOST":"h","Port":23,"UserName":"u","PASSWORD":"p"}`)
	cfg, err := loadConfig(p)
	require.NoError(t, err)
	require.Equal(t, "h", cfg.Host)
	require.Equal(t, 23, cfg.Port)
	require.Equal(t, "u", cfg.Username)
	require.Equal(t, "p", cfg.Password)
}

func TestLoadConfig_PortDefaults(t *testing.T) {
	p := writeConfig(t, t.TempDir(), "c.json", `{"host":"h","username":"u","password":"p"}`)
	cfg, err := loadConfig(p)
	require.NoError(t, err)
	require.Equal(t, 22, cfg.Port)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	p := writeConfig(t, t.TempDir(), "c.json", `{"host":`)
	_, err := loadConfig(p)
	var ce *exitCodeError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, exitConfigInvalid, ce.code)
}

func TestLoadConfig_MissingRequiredFields(t *testing.T) {
	for name, content := range map[string]string{
		"host":     `{"username":"u","password":"p"}`,
		"username": `{"host":"h","password":"p"}`,
		"password": `{"host":"h","username":"u"}`,
	} {
		p := writeConfig(t, t.TempDir(), "c.json", content)
		_, err := loadConfig(p)
		var ce *exitCodeError
		require.ErrorAs(t, err, &ce, "missing %s", name)
		require.Equal(t, exitConfigInvalid, ce.code)
		require.Contains(t, err.Error(), name)
	}
}

func TestLoadConfig_KeyFileSatisfiesCredential(t *testing.T) {
	p := writeConfig(t, t.TempDir(), "c.json",
		`{"host":"h","username":"u","key_file":"/home/op/.ssh/id_ed25519","timeout":"15s"}`)
	cfg, err := loadConfig(p)
	require.NoError(t, err)
	require.Equal(t, "/home/op/.ssh/id_ed25519", cfg.KeyFile)
	require.Equal(t, 15*time.Second, cfg.Timeout)
}
