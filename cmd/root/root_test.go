package root

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRegistersPersistentFlags(t *testing.T) {
	Init()

	for _, name := range []string{"input", "output", "club"} {
		flag := Cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, "missing persistent flag %q", name)
	}
}

func TestRootCommandMetadata(t *testing.T) {
	assert.Equal(t, "clubdues", Cmd.Use)
	assert.NotEmpty(t, Cmd.Short)
	assert.NotEmpty(t, Cmd.Long)
}

func TestLoggerWrapsSharedInstance(t *testing.T) {
	assert.NotNil(t, Logger())
}
