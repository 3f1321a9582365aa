package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xPexy/deployconf/internal/accounts"
	"github.com/0xPexy/deployconf/internal/buildtool"
	"github.com/0xPexy/deployconf/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	devKey     = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	devAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	// Unset rather than empty: the dotenv loader never overrides a variable
	// that is present, even with an empty value.
	for _, k := range []string{"NETWORK", "SEPOLIA_URL", "SEPOLIA_KEY", "DEPLOYCONF_LOG_LEVEL", "DEPLOYCONF_LOG_FORMAT"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	for k, v := range env {
		t.Setenv(k, v)
	}
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return runWithEnvFile(t, filepath.Join(t.TempDir(), "absent.env"), args...)
}

func runWithEnvFile(t *testing.T, envFile string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--env-file=" + envFile}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRenderJSON(t *testing.T) {
	setEnv(t, map[string]string{"SEPOLIA_URL": "https://x", "SEPOLIA_KEY": "abc123"})

	out, _, err := run(t, "render")
	require.NoError(t, err)

	var bt buildtool.BuildToolConfig
	require.NoError(t, json.Unmarshal([]byte(out), &bt))
	assert.Equal(t, buildtool.Network{URL: "https://x", Accounts: []string{"0xabc123"}}, bt.Networks["sepolia"])
	assert.Equal(t, "sepolia", bt.DefaultNetwork)
}

func TestRenderToFileInfersFormat(t *testing.T) {
	setEnv(t, map[string]string{"NETWORK": "mainnet"})
	path := filepath.Join(t.TempDir(), "hardhat.yaml")

	out, _, err := run(t, "render", "--out", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "defaultNetwork: mainnet")
	assert.NotContains(t, string(data), "mainnet:")
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	setEnv(t, nil)
	_, _, err := run(t, "render", "--format", "toml")
	assert.ErrorIs(t, err, buildtool.ErrUnknownFormat)
}

func TestShowRedactsKey(t *testing.T) {
	setEnv(t, map[string]string{"SEPOLIA_KEY": devKey})

	out, _, err := run(t, "show")
	require.NoError(t, err)
	assert.NotContains(t, out, devKey)
	assert.Contains(t, out, "defaultNetwork: sepolia")
	assert.Contains(t, out, "url: (unset)")
	assert.Contains(t, out, "accountKey: 0x****ff80")
}

func TestCheck(t *testing.T) {
	setEnv(t, map[string]string{"SEPOLIA_URL": "not a url", "SEPOLIA_KEY": devKey})

	out, _, err := run(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "error: sepolia.url")
	assert.Contains(t, out, "1 error(s), 0 warning(s)")

	_, _, err = run(t, "check", "--strict")
	assert.ErrorIs(t, err, errCheckFailed)
}

func TestCheckJSON(t *testing.T) {
	setEnv(t, map[string]string{"NETWORK": "mainnet", "SEPOLIA_URL": "https://x", "SEPOLIA_KEY": devKey})

	out, _, err := run(t, "check", "--json", "--strict")
	require.NoError(t, err)

	var report validate.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Findings, 1)
	assert.Equal(t, "defaultNetwork", report.Findings[0].Field)
	assert.Equal(t, validate.SeverityWarning, report.Findings[0].Severity)
}

func TestAccounts(t *testing.T) {
	setEnv(t, map[string]string{"SEPOLIA_KEY": "0x" + devKey})

	out, _, err := run(t, "accounts")
	require.NoError(t, err)
	assert.Contains(t, out, "PUBLIC KEY")
	assert.Contains(t, out, devAddress)
	assert.NotContains(t, out, devKey)

	acct, err := accounts.FromKey(devKey)
	require.NoError(t, err)
	assert.Contains(t, out, acct.PublicKey)
}

func TestAccountsInvalidKeyIsLogged(t *testing.T) {
	setEnv(t, map[string]string{"SEPOLIA_KEY": "abc123"})

	out, logs, err := run(t, "accounts")
	require.NoError(t, err)
	assert.Contains(t, out, "sepolia")
	assert.Contains(t, logs, "cannot derive account")
	assert.NotContains(t, logs, "abc123")
}

func TestInvalidLogLevel(t *testing.T) {
	setEnv(t, map[string]string{"DEPLOYCONF_LOG_LEVEL": "loud"})
	_, _, err := run(t, "show")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestVersion(t *testing.T) {
	setEnv(t, nil)
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "deployconf "+Version)
}

func TestEnvFileFlagLoadsValues(t *testing.T) {
	for _, url := range []string{"https://first.example", "https://second.example"} {
		t.Run(url, func(t *testing.T) {
			setEnv(t, nil)
			path := writeEnvFile(t, "SEPOLIA_URL="+url+"\nSEPOLIA_KEY="+devKey+"\n")

			out, _, err := runWithEnvFile(t, path, "show")
			require.NoError(t, err)
			assert.Contains(t, out, "url: "+url)
			assert.Contains(t, out, "accountKey: 0x****ff80")
		})
	}
}

func TestEnvFileCanSetLogFormat(t *testing.T) {
	setEnv(t, nil)
	path := writeEnvFile(t, "DEPLOYCONF_LOG_FORMAT=json\nSEPOLIA_KEY=abc123\n")

	_, logs, err := runWithEnvFile(t, path, "accounts")
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"cannot derive account"`)
}

func TestMalformedEnvFileWarnsThroughConfiguredLogger(t *testing.T) {
	setEnv(t, map[string]string{"DEPLOYCONF_LOG_FORMAT": "json", "SEPOLIA_URL": "https://x"})
	path := writeEnvFile(t, "BAD-KEY=1\n")

	out, logs, err := runWithEnvFile(t, path, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "url: https://x")
	assert.Contains(t, logs, `"level":"warning"`)
	assert.Contains(t, logs, `"msg":"failed to load env file"`)
}
