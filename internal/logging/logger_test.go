package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInit_Levels(t *testing.T) {
	log, err := Init("debug", "dev")
	require.NoError(t, err)
	defer log.Closer()
	assert.Equal(t, zap.DebugLevel, log.Level.Level())

	log, err = Init("nonsense", "prod")
	require.NoError(t, err)
	defer log.Closer()
	assert.Equal(t, zap.InfoLevel, log.Level.Level())
	assert.NotNil(t, log.Sugar)
}
