package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_ConfiguresRemoteSearchSession(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("LISTINGS_API_URL", "http://listings.local/api/")

	app, err := NewApp()
	require.NoError(t, err)
	assert.NotNil(t, app.RemoteSearch())
}

func TestNewApp_RemoteSearchIsOptional(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("LISTINGS_API_URL", "")

	app, err := NewApp()
	require.NoError(t, err)
	assert.Nil(t, app.RemoteSearch())
}
