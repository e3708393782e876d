package services

import (
	"context"
	"fmt"
	"time"

	"github.com/itam-labs/assetdesk/modules/core/domain/activity"
	"github.com/itam-labs/assetdesk/modules/vminventory/domain/vm"
	"github.com/itam-labs/assetdesk/pkg/composables"
	"github.com/itam-labs/assetdesk/pkg/eventbus"
	"github.com/itam-labs/assetdesk/pkg/serrors"
)

const dateLayout = "2006-01-02"

type VMService struct {
	repo      vm.Repository
	publisher eventbus.EventBus
}

func NewVMService(repo vm.Repository, publisher eventbus.EventBus) *VMService {
	return &VMService{repo: repo, publisher: publisher}
}

func (s *VMService) GetAll(ctx context.Context) ([]vm.VMInventory, error) {
	return s.repo.GetAll(ctx)
}

func (s *VMService) GetByID(ctx context.Context, id int) (*vm.VMInventory, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *VMService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// Create requires a parseable lease window and fills the remaining defaults:
// validity derived from the window, vmStatus Running.
func (s *VMService) Create(ctx context.Context, data *vm.VMInventory) (*vm.VMInventory, error) {
	if err := validateDates(data.StartDate, data.EndDate); err != nil {
		return nil, err
	}
	applyDefaults(data)

	var created *vm.VMInventory
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.repo.Create(txCtx, data)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(activity.RecordedEvent{
		Action:   "created",
		ItemType: activity.ItemTypeVM,
		ItemID:   created.ID,
		Details:  fmt.Sprintf("Created VM record %s", created.VMName),
	})
	return created, nil
}

func (s *VMService) Update(ctx context.Context, data *vm.VMInventory) error {
	if err := validateDates(data.StartDate, data.EndDate); err != nil {
		return err
	}
	applyDefaults(data)

	if err := composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.Update(txCtx, data)
	}); err != nil {
		return err
	}

	s.publisher.Publish(activity.RecordedEvent{
		Action:   "updated",
		ItemType: activity.ItemTypeVM,
		ItemID:   data.ID,
		Details:  fmt.Sprintf("Updated VM record %s", data.VMName),
	})
	return nil
}

func (s *VMService) Delete(ctx context.Context, id int) error {
	if err := composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, id)
	}); err != nil {
		return err
	}

	s.publisher.Publish(activity.RecordedEvent{
		Action:   "deleted",
		ItemType: activity.ItemTypeVM,
		ItemID:   id,
		Details:  fmt.Sprintf("Deleted VM record %d", id),
	})
	return nil
}

func validateDates(startDate, endDate string) error {
	if _, err := time.Parse(dateLayout, startDate); err != nil {
		return serrors.New(serrors.KindInvalidInput, "Invalid or missing dates")
	}
	if _, err := time.Parse(dateLayout, endDate); err != nil {
		return serrors.New(serrors.KindInvalidInput, "Invalid or missing dates")
	}
	return nil
}

func applyDefaults(data *vm.VMInventory) {
	if data.Validity == "" {
		data.Validity = vm.DeriveValidity(data.StartDate, data.EndDate, time.Now())
	}
	if data.VMStatus == "" {
		data.VMStatus = "Running"
	}
}
