package persistence

import (
	"github.com/itam-labs/assetdesk/modules/vminventory/domain/vm"
	"github.com/itam-labs/assetdesk/modules/vminventory/domain/zabbix"
	"github.com/itam-labs/assetdesk/modules/vminventory/infrastructure/persistence/models"
	"github.com/itam-labs/assetdesk/pkg/mapping"
)

const dateLayout = "2006-01-02"

func toDomainVMInventory(m *models.VMInventory) *vm.VMInventory {
	return &vm.VMInventory{
		ID:               m.ID,
		StartDate:        m.StartDate.Format(dateLayout),
		EndDate:          m.EndDate.Format(dateLayout),
		Validity:         m.Validity,
		Hypervisor:       mapping.SQLNullStringToValue(m.Hypervisor),
		Hostname:         mapping.SQLNullStringToValue(m.Hostname),
		HostModel:        mapping.SQLNullStringToValue(m.HostModel),
		HostIPAddress:    mapping.SQLNullStringToValue(m.HostIPAddress),
		HostOS:           mapping.SQLNullStringToValue(m.HostOS),
		Rack:             mapping.SQLNullStringToValue(m.Rack),
		VMID:             mapping.SQLNullStringToValue(m.VMID),
		VMName:           mapping.SQLNullStringToValue(m.VMName),
		VMStatus:         mapping.SQLNullStringToValue(m.VMStatus),
		VMIPAddress:      mapping.SQLNullStringToValue(m.VMIPAddress),
		InternetAccess:   m.InternetAccess,
		VMOS:             mapping.SQLNullStringToValue(m.VMOS),
		VMOSVersion:      mapping.SQLNullStringToValue(m.VMOSVersion),
		DeployedBy:       mapping.SQLNullStringToValue(m.DeployedBy),
		User:             mapping.SQLNullStringToValue(m.User),
		Department:       mapping.SQLNullStringToValue(m.Department),
		JiraTicketNumber: mapping.SQLNullStringToValue(m.JiraTicketNumber),
		Remarks:          mapping.SQLNullStringToValue(m.Remarks),
		CreatedAt:        mapping.TimeToRFC3339(m.CreatedAt),
		UpdatedAt:        mapping.TimeToRFC3339(m.UpdatedAt),
	}
}

func toDomainZabbixVM(m *models.ZabbixVM) *zabbix.VM {
	return &zabbix.VM{
		ID:          m.ID,
		Name:        m.Name,
		IPAddress:   mapping.SQLNullStringToValue(m.IPAddress),
		Status:      m.Status,
		CPUUsage:    mapping.SQLNullFloat64ToValue(m.CPUUsage),
		MemoryUsage: mapping.SQLNullFloat64ToValue(m.MemoryUsage),
		DiskUsage:   mapping.SQLNullFloat64ToValue(m.DiskUsage),
		OS:          mapping.SQLNullStringToValue(m.OS),
		LastCheck:   mapping.SQLNullTimeToRFC3339(m.LastCheck),
		CreatedAt:   mapping.TimeToRFC3339(m.CreatedAt),
		UpdatedAt:   mapping.TimeToRFC3339(m.UpdatedAt),
	}
}
