package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brsv-srg/qodefly-dashboard/internal/config"
	"github.com/brsv-srg/qodefly-dashboard/internal/logger"
)

// TestNewHandlers_WithAddress verifies that a configured listen address
// yields an HTTP handler. The factory and app info are only stored, so nil
// is safe here.
func TestNewHandlers_WithAddress(t *testing.T) {
	cfg := config.Gateway{Address: ":8080"}

	h, err := NewHandlers(nil, nil, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

// TestNewHandlers_NoAddress verifies that an empty address is rejected.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(nil, nil, config.Gateway{}, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
