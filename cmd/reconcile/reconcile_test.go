package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandMetadata(t *testing.T) {
	assert.Equal(t, "reconcile", Cmd.Use)
	assert.NotEmpty(t, Cmd.Short)
	assert.NotNil(t, Cmd.RunE)
}
