package persistence

import (
	"github.com/itam-labs/assetdesk/modules/assets/domain/accessory"
	"github.com/itam-labs/assetdesk/modules/assets/domain/asset"
	"github.com/itam-labs/assetdesk/modules/assets/domain/bitlocker"
	"github.com/itam-labs/assetdesk/modules/assets/domain/component"
	"github.com/itam-labs/assetdesk/modules/assets/domain/license"
	"github.com/itam-labs/assetdesk/modules/assets/infrastructure/persistence/models"
	"github.com/itam-labs/assetdesk/pkg/mapping"
)

func toDomainAsset(m *models.Asset) *asset.Asset {
	return &asset.Asset{
		ID:              m.ID,
		AssetTag:        m.AssetTag,
		SerialNumber:    mapping.SQLNullStringToValue(m.SerialNumber),
		Model:           m.Model,
		Status:          asset.Status(m.Status),
		Category:        m.Category,
		Manufacturer:    mapping.SQLNullStringToValue(m.Manufacturer),
		PurchaseDate:    mapping.SQLNullTimeToDate(m.PurchaseDate),
		PurchaseCost:    mapping.SQLNullFloat64ToValue(m.PurchaseCost),
		WarrantyExpires: mapping.SQLNullTimeToDate(m.WarrantyExpires),
		AssignedTo:      mapping.SQLNullStringToValue(m.AssignedTo),
		Location:        mapping.SQLNullStringToValue(m.Location),
		Notes:           mapping.SQLNullStringToValue(m.Notes),
		IPAddress:       mapping.SQLNullStringToValue(m.IPAddress),
		MACAddress:      mapping.SQLNullStringToValue(m.MACAddress),
		DateReleased:    mapping.SQLNullTimeToDate(m.DateReleased),
		ReleasedBy:      mapping.SQLNullStringToValue(m.ReleasedBy),
		FinanceChecked:  m.FinanceChecked,
		CreatedAt:       mapping.TimeToRFC3339(m.CreatedAt),
		UpdatedAt:       mapping.TimeToRFC3339(m.UpdatedAt),
	}
}

func toDomainComponent(m *models.Component) *component.Component {
	return &component.Component{
		ID:           m.ID,
		Name:         m.Name,
		Category:     m.Category,
		SerialNumber: mapping.SQLNullStringToValue(m.SerialNumber),
		Manufacturer: mapping.SQLNullStringToValue(m.Manufacturer),
		Model:        mapping.SQLNullStringToValue(m.Model),
		PurchaseDate: mapping.SQLNullTimeToDate(m.PurchaseDate),
		PurchaseCost: mapping.SQLNullFloat64ToValue(m.PurchaseCost),
		AssetID:      mapping.SQLNullInt32ToPointer(m.AssetID),
		Status:       m.Status,
		CreatedAt:    mapping.TimeToRFC3339(m.CreatedAt),
		UpdatedAt:    mapping.TimeToRFC3339(m.UpdatedAt),
	}
}

func toDomainAccessory(m *models.Accessory) *accessory.Accessory {
	return &accessory.Accessory{
		ID:                m.ID,
		Name:              m.Name,
		Category:          m.Category,
		Manufacturer:      mapping.SQLNullStringToValue(m.Manufacturer),
		Model:             mapping.SQLNullStringToValue(m.Model),
		PurchaseDate:      mapping.SQLNullTimeToDate(m.PurchaseDate),
		PurchaseCost:      mapping.SQLNullFloat64ToValue(m.PurchaseCost),
		Quantity:          m.Quantity,
		QuantityAvailable: m.QuantityAvailable,
		Location:          mapping.SQLNullStringToValue(m.Location),
		CreatedAt:         mapping.TimeToRFC3339(m.CreatedAt),
		UpdatedAt:         mapping.TimeToRFC3339(m.UpdatedAt),
	}
}

func toDomainLicense(m *models.License) *license.License {
	return &license.License{
		ID:             m.ID,
		Name:           m.Name,
		Software:       m.Software,
		Key:            m.Key,
		Seats:          m.Seats,
		SeatsAvailable: m.SeatsAvailable,
		PurchaseDate:   mapping.SQLNullTimeToDate(m.PurchaseDate),
		ExpirationDate: mapping.SQLNullTimeToDate(m.ExpirationDate),
		PurchaseCost:   mapping.SQLNullFloat64ToValue(m.PurchaseCost),
		Notes:          mapping.SQLNullStringToValue(m.Notes),
		CreatedAt:      mapping.TimeToRFC3339(m.CreatedAt),
		UpdatedAt:      mapping.TimeToRFC3339(m.UpdatedAt),
	}
}

func toDomainBitLockerKey(m *models.BitLockerKey) *bitlocker.Key {
	return &bitlocker.Key{
		ID:          m.ID,
		AssetID:     mapping.SQLNullInt32ToPointer(m.AssetID),
		RecoveryKey: m.RecoveryKey,
		DriveLetter: mapping.SQLNullStringToValue(m.DriveLetter),
		CreatedAt:   mapping.TimeToRFC3339(m.CreatedAt),
		UpdatedAt:   mapping.TimeToRFC3339(m.UpdatedAt),
	}
}
