package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brsv-srg/qodefly-dashboard/internal/config"
	"github.com/brsv-srg/qodefly-dashboard/internal/logger"
	"github.com/brsv-srg/qodefly-dashboard/internal/tui"
	"github.com/brsv-srg/qodefly-dashboard/models"
)

type fakeUI struct {
	err   error
	calls int
}

func (f *fakeUI) Run(context.Context) error {
	f.calls++
	return f.err
}

func testClientConfig() *config.ClientConfig {
	return &config.ClientConfig{
		Adapter: config.Adapter{APIURL: "http://127.0.0.1:1", RequestTimeout: time.Second},
		Session: config.Session{Store: config.StoreMemory, Key: config.DefaultTokenKey},
	}
}

func TestNewApp(t *testing.T) {
	a, err := NewApp(context.Background(), testClientConfig(), models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, a.ui)
	require.NotNil(t, a.storages)
}

func TestNewApp_UnknownStore(t *testing.T) {
	cfg := testClientConfig()
	cfg.Session.Store = "tape"

	_, err := NewApp(context.Background(), cfg, models.AppBuildInfo{}, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name    string
		uiErr   error
		wantErr bool
	}{
		{name: "normal exit", uiErr: nil},
		{name: "user quit", uiErr: tui.ErrUserQuit},
		{name: "ui failure", uiErr: errors.New("no tty"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewApp(context.Background(), testClientConfig(), models.AppBuildInfo{}, logger.Nop())
			require.NoError(t, err)

			ui := &fakeUI{err: tt.uiErr}
			a.ui = ui

			err = a.Run(context.Background())
			assert.Equal(t, 1, ui.calls)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
