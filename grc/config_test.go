package grc_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphisoft/jsontogrc/grc"
)

func TestConfigValidateRequiresTargetAcVersion(t *testing.T) {
	t.Parallel()

	cfg := grc.NewConfig()

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, grc.ErrInvalidOption)

	cfg.TargetAcVersion = 28
	assert.NoError(t, cfg.Validate())
}

func TestConfigIgnoredResourceTypeList(t *testing.T) {
	t.Parallel()

	cfg := grc.NewConfig()
	cfg.IgnoredResourceTypes = " FTGP, FTYP ,,GALR"

	assert.Equal(t, []string{"FTGP", "FTYP", "GALR"}, cfg.IgnoredResourceTypeList())
}

func TestConfigIgnoredResourceTypeListEmpty(t *testing.T) {
	t.Parallel()

	cfg := grc.NewConfig()

	assert.Nil(t, cfg.IgnoredResourceTypeList())
}

func TestUnknownIgnoredResourceTypes(t *testing.T) {
	t.Parallel()

	data := []byte(`{"GDLG": [], "CMND": []}`)

	unknown := grc.UnknownIgnoredResourceTypes(data, []string{"GDLG", "BOGUS"})
	assert.Equal(t, []string{"BOGUS"}, unknown)

	assert.Nil(t, grc.UnknownIgnoredResourceTypes(data, nil))
	assert.Nil(t, grc.UnknownIgnoredResourceTypes(data, []string{"GDLG", "CMND"}))
}

func TestConfigRegisterFlagsWiresTargetAcVersion(t *testing.T) {
	t.Parallel()

	cfg := grc.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	require.NoError(t, flags.Parse([]string{"--target-ac-version", "29"}))
	assert.Equal(t, 29, cfg.TargetAcVersion)
}
