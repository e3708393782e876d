package services

import (
	"context"
	"strings"

	"github.com/itam-labs/assetdesk/modules/vminventory/domain/zabbix"
	"github.com/itam-labs/assetdesk/pkg/composables"
	"github.com/itam-labs/assetdesk/pkg/serrors"
)

type ZabbixService struct {
	repo zabbix.Repository
}

func NewZabbixService(repo zabbix.Repository) *ZabbixService {
	return &ZabbixService{repo: repo}
}

func (s *ZabbixService) GetAll(ctx context.Context) ([]zabbix.VM, error) {
	return s.repo.GetAll(ctx)
}

// Create exists for seeding parity; snapshots normally arrive through the
// provisioner. Status defaults to unknown.
func (s *ZabbixService) Create(ctx context.Context, data *zabbix.VM) (*zabbix.VM, error) {
	if strings.TrimSpace(data.Name) == "" {
		return nil, serrors.New(serrors.KindInvalidInput, "name is required")
	}
	if data.Status == "" {
		data.Status = "unknown"
	}

	var created *zabbix.VM
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.repo.Create(txCtx, data)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *ZabbixService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
