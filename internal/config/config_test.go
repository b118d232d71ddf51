package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrforge/qrforge/qrecc"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	v := viper.New()
	v.AddConfigPath(t.TempDir()) // empty dir: no qrgen.* file to find.

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadRejectsUnknownLevel(t *testing.T) {
	v := viper.New()
	v.AddConfigPath(t.TempDir())
	v.Set("level", "bogus")

	_, err := Load(v)
	assert.Error(t, err)
}

func TestParseLevelAcceptsLetterAndName(t *testing.T) {
	for _, s := range []string{"L", "low", "LOW"} {
		l, err := parseLevel(s)
		require.NoError(t, err)
		assert.Equal(t, qrecc.Low, l)
	}
}
