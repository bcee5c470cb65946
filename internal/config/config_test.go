package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:      "8080",
			JWTSecret: "a-perfectly-fine-development-secret",
			UploadDir: "./uploads",
			Env:       "development",
		}
	}

	t.Run("development defaults pass", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("missing required values", func(t *testing.T) {
		c := base()
		c.Port = ""
		assert.Error(t, c.Validate())

		c = base()
		c.JWTSecret = ""
		assert.Error(t, c.Validate())

		c = base()
		c.UploadDir = ""
		assert.Error(t, c.Validate())
	})

	t.Run("production rejects default secret", func(t *testing.T) {
		c := base()
		c.Env = "production"
		c.JWTSecret = "your-secret-key-change-in-production"
		c.DBPassword = "strong-enough-password"
		assert.Error(t, c.Validate())
	})

	t.Run("production rejects short secret", func(t *testing.T) {
		c := base()
		c.Env = "prod"
		c.JWTSecret = "too-short"
		c.DBPassword = "strong-enough-password"
		assert.Error(t, c.Validate())
	})

	t.Run("production rejects weak db password", func(t *testing.T) {
		c := base()
		c.Env = "production"
		c.JWTSecret = "secure-secret-at-least-32-chars-long!!"
		c.DBPassword = "password"
		assert.Error(t, c.Validate())
	})

	t.Run("production with strong settings passes", func(t *testing.T) {
		c := base()
		c.Env = "production"
		c.JWTSecret = "secure-secret-at-least-32-chars-long!!"
		c.DBPassword = "strong-enough-password"
		assert.NoError(t, c.Validate())
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("APP_ENV", "test")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, "ripple", c.DBName)
	assert.Equal(t, "./uploads", c.UploadDir)
	assert.Equal(t, "test", c.Env)
	assert.False(t, c.TracingEnabled)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("APP_ENV", "test")
	t.Setenv("PORT", "9999")
	t.Setenv("UPLOAD_DIR", "/tmp/media")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9999", c.Port)
	assert.Equal(t, "/tmp/media", c.UploadDir)
}

func TestIsProduction(t *testing.T) {
	assert.True(t, (&Config{Env: "production"}).IsProduction())
	assert.True(t, (&Config{Env: "prod"}).IsProduction())
	assert.False(t, (&Config{Env: "development"}).IsProduction())
	assert.False(t, (&Config{Env: "test"}).IsProduction())
}
