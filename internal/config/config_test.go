package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment cannot
// leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"POSTWIZARD_API_URL", "POSTWIZARD_API_TOKEN", "POSTWIZARD_HTTP_TIMEOUT",
		"POSTWIZARD_LOG_FILE", "POSTWIZARD_LOG_VERBOSITY",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SERVICE_NAME",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "postwizard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, "postwizard", cfg.Trace.ServiceName)
	assert.Zero(t, cfg.HTTPTimeout)
	assert.Empty(t, cfg.Trace.Endpoint)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
api_url: https://postman.example/api/v1
http_timeout: 15s
log_file: /tmp/postwizard.log
trace:
  endpoint: localhost:4318
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://postman.example/api/v1", cfg.APIURL)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "/tmp/postwizard.log", cfg.LogFile)
	assert.Equal(t, "localhost:4318", cfg.Trace.Endpoint)
	assert.Equal(t, "postwizard", cfg.Trace.ServiceName)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "api_url: https://file.example/v1\napi_token: from-file\n")
	t.Setenv("POSTWIZARD_API_URL", "https://env.example/v1")
	t.Setenv("POSTWIZARD_HTTP_TIMEOUT", "3s")
	t.Setenv("POSTWIZARD_LOG_VERBOSITY", "2")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example/v1", cfg.APIURL)
	assert.Equal(t, "from-file", cfg.APIToken)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 2, cfg.LogVerbosity)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "not found")

	_, err = Load(writeFile(t, "api_url: [unclosed"))
	assert.ErrorContains(t, err, "parse")

	_, err = Load(writeFile(t, "api_url: \"\"\n"))
	assert.ErrorContains(t, err, "api_url is empty")

	t.Setenv("POSTWIZARD_HTTP_TIMEOUT", "soon")
	_, err = Load("")
	assert.ErrorContains(t, err, "parse env")
}

func TestValidate_Negative(t *testing.T) {
	cfg := Default()
	cfg.HTTPTimeout = -time.Second
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.LogVerbosity = -1
	assert.Error(t, cfg.Validate())
}
