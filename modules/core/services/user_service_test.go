package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itam-labs/assetdesk/modules/core/domain/networksettings"
	"github.com/itam-labs/assetdesk/modules/core/domain/user"
	"github.com/itam-labs/assetdesk/pkg/serrors"
)

func TestUserCreate_RequiresNameAndEmail(t *testing.T) {
	svc := NewUserService(nil, nil)

	tests := []struct {
		name  string
		input user.User
	}{
		{"missing both", user.User{}},
		{"missing email", user.User{Name: "John Doe"}},
		{"missing name", user.User{Email: "john.doe@example.com"}},
		{"whitespace name", user.User{Name: "  ", Email: "john.doe@example.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.input, "secret123")
			require.Error(t, err)
			assert.True(t, serrors.Is(err, serrors.KindInvalidInput))
			assert.Contains(t, err.Error(), "Name and email are required.")
		})
	}
}

func TestNetworkSettingsUpdate_RejectsBadAddresses(t *testing.T) {
	svc := NewNetworkSettingsService(nil)

	tests := []struct {
		name  string
		input networksettings.Settings
	}{
		{"missing dns1", networksettings.Settings{DNS2: "8.8.4.4"}},
		{"bad dns2", networksettings.Settings{DNS1: "8.8.8.8", DNS2: "not-an-ip"}},
		{"bad gateway", networksettings.Settings{DNS1: "8.8.8.8", DNS2: "8.8.4.4", DefaultGateway: "gateway"}},
		{"bad mask", networksettings.Settings{DNS1: "8.8.8.8", DNS2: "8.8.4.4", SubnetMask: "255.255"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), &tt.input)
			require.Error(t, err)
			assert.True(t, serrors.Is(err, serrors.KindInvalidInput))
		})
	}
}
