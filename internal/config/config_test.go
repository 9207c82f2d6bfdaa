package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMinIOUseSSLFromEnv(t *testing.T) {
	t.Setenv("MINIO_USE_SSL", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.MinIO.UseSSL)
}

func TestLoadMinIOUseSSLDefaultsOff(t *testing.T) {
	t.Setenv("MINIO_USE_SSL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.MinIO.UseSSL)
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("SOME_FLAG", "1")
	assert.True(t, getEnvBool("SOME_FLAG", false))

	t.Setenv("SOME_FLAG", "not-a-bool")
	assert.False(t, getEnvBool("SOME_FLAG", false))

	assert.True(t, getEnvBool("UNSET_FLAG", true))
}
