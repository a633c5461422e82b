package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	conf, err := Load("")
	require.NoError(t, err)

	assert.False(t, conf.Gateway.Sandbox)
	assert.Equal(t, "extended", conf.Gateway.MacMode)
	assert.Equal(t, "BGN", conf.Gateway.Currency)
	assert.Equal(t, "+03", conf.Gateway.Timezone)
	assert.Equal(t, "5100", conf.Listen.Port)
	assert.False(t, conf.Mongo.Enabled)
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	yaml := `
is_debug: true
gateway:
  sandbox: true
  mac_mode: simple
  terminal: T0000001
  merchant: M0000001
listen:
  port: "8080"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0600))
	t.Setenv("BORICA_TERMINAL", "T0000002")

	conf, err := Load(path)
	require.NoError(t, err)

	assert.True(t, conf.IsDebug)
	assert.True(t, conf.Gateway.Sandbox)
	assert.Equal(t, "simple", conf.Gateway.MacMode)
	assert.Equal(t, "T0000002", conf.Gateway.Terminal)
	assert.Equal(t, "M0000001", conf.Gateway.Merchant)
	assert.Equal(t, "8080", conf.Listen.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
