package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseYAML = `
api:
  environment: test
  port: "3000"
  allowed_cors_domains:
    - http://localhost:5173
  jwt_signing_key: test-key
  client_url: https://order.example.com
gin:
  mode: test
postgres:
  host: localhost
  port: "5432"
  user: postgres
  password: postgres
  db: restron
  ssl_mode: disable
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	conf, err := Load(writeConfig(t, baseYAML+`
push:
  enabled: true
  concurrency: 4
orders:
  time_zone: Asia/Kolkata
`))
	require.NoError(t, err)

	assert.Equal(t, "3000", conf.API.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, conf.API.AllowedCORSDomains)
	assert.Equal(t, "https://order.example.com", conf.API.ClientURL)
	assert.Equal(t, "restron", conf.Postgres.DB)
	assert.True(t, conf.Push.Enabled)
	assert.Equal(t, 4, conf.Push.Concurrency)
	assert.Equal(t, "Asia/Kolkata", conf.Orders.TimeZone)
}

func TestLoad_OptionalSections(t *testing.T) {
	conf, err := Load(writeConfig(t, baseYAML))
	require.NoError(t, err)

	require.NotNil(t, conf.Push)
	assert.False(t, conf.Push.Enabled)
	require.NotNil(t, conf.Orders)
	assert.Empty(t, conf.Orders.TimeZone)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, baseYAML)

	t.Run("platform port", func(t *testing.T) {
		t.Setenv("PORT", "8080")

		conf, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "8080", conf.API.Port)
	})

	t.Run("prefixed port wins", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("APP_API_PORT", "9090")

		conf, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "9090", conf.API.Port)
	})

	t.Run("nested key", func(t *testing.T) {
		t.Setenv("APP_API_JWT_SIGNING_KEY", "from-env")

		conf, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "from-env", conf.API.JWTSigningKey)
	})

	t.Run("firebase credentials", func(t *testing.T) {
		t.Setenv("FIREBASE_SERVICE_ACCOUNT_BASE64", "e30=")

		conf, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "e30=", conf.Push.CredentialsBase64)
	})
}

func TestLoad_Errors(t *testing.T) {
	tests := map[string]string{
		"missing signing key": `
api:
  port: "3000"
gin:
  mode: test
postgres:
  host: localhost
`,
		"missing postgres section": `
api:
  jwt_signing_key: k
gin:
  mode: test
`,
		"malformed yaml": "api: [",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
