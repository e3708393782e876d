package persistence

import (
	"github.com/itam-labs/assetdesk/modules/core/domain/activity"
	"github.com/itam-labs/assetdesk/modules/core/domain/networksettings"
	"github.com/itam-labs/assetdesk/modules/core/domain/user"
	"github.com/itam-labs/assetdesk/modules/core/infrastructure/persistence/models"
	"github.com/itam-labs/assetdesk/pkg/mapping"
)

func toDomainUser(m *models.User) *user.User {
	return &user.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		Department:   mapping.SQLNullStringToValue(m.Department),
		Position:     mapping.SQLNullStringToValue(m.Position),
		Phone:        mapping.SQLNullStringToValue(m.Phone),
		Location:     mapping.SQLNullStringToValue(m.Location),
		IsActive:     m.IsActive,
		IsAdmin:      m.IsAdmin,
		CreatedAt:    mapping.TimeToRFC3339(m.CreatedAt),
		UpdatedAt:    mapping.TimeToRFC3339(m.UpdatedAt),
		PasswordHash: mapping.SQLNullStringToValue(m.Password),
	}
}

func toDomainActivityLog(m *models.ActivityLog) *activity.Log {
	return &activity.Log{
		ID:        m.ID,
		UserID:    mapping.SQLNullInt32ToPointer(m.UserID),
		Action:    m.Action,
		ItemType:  activity.ItemType(m.ItemType),
		ItemID:    m.ItemID,
		Details:   mapping.SQLNullStringToValue(m.Details),
		CreatedAt: mapping.TimeToRFC3339(m.CreatedAt),
	}
}

func toDomainNetworkSettings(m *models.NetworkSettings) *networksettings.Settings {
	return &networksettings.Settings{
		ID:             m.ID,
		DNS1:           m.DNS1,
		DNS2:           m.DNS2,
		DefaultGateway: mapping.SQLNullStringToValue(m.DefaultGateway),
		SubnetMask:     mapping.SQLNullStringToValue(m.SubnetMask),
		CreatedAt:      mapping.TimeToRFC3339(m.CreatedAt),
		UpdatedAt:      mapping.TimeToRFC3339(m.UpdatedAt),
	}
}
