package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "CORS_ORIGINS", "DATABASE_URI", "REDIS_ADDR", "REDIS_PASS", "JWT_SECRET_KEY",
		"AI_PROVIDER", "AI_MODEL", "GEMINI_API_KEY", "OPENAI_API_KEY",
		"GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_SECRET", "GOOGLE_REDIRECT_URL", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFileDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, DevJWTSecret, cfg.JWT.Secret)
	assert.True(t, cfg.JWT.InsecureDefault)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.AI.Model)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.False(t, cfg.Google.Enabled())
}

func TestLoadFileYAMLThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlBody := `
server:
  port: "9000"
jwt:
  secret: from-yaml
ai:
  provider: OpenAI
google:
  client_id: id
  client_secret: secret
  redirect_url: http://localhost/callback
`
	require.NoError(t, os.WriteFile(path, []byte(yamlBody), 0o600))
	t.Setenv("JWT_SECRET_KEY", "from-env")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.False(t, cfg.JWT.InsecureDefault)
	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.Equal(t, "gpt-4o", cfg.AI.Model)
	assert.True(t, cfg.Google.Enabled())
}

func TestLoadFileRejectsUnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("AI_PROVIDER", "llama")

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFileInvalidYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
