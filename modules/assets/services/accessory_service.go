package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/itam-labs/assetdesk/modules/assets/domain/accessory"
	"github.com/itam-labs/assetdesk/modules/core/domain/activity"
	"github.com/itam-labs/assetdesk/pkg/composables"
	"github.com/itam-labs/assetdesk/pkg/eventbus"
	"github.com/itam-labs/assetdesk/pkg/serrors"
)

type AccessoryService struct {
	repo      accessory.Repository
	publisher eventbus.EventBus
}

func NewAccessoryService(repo accessory.Repository, publisher eventbus.EventBus) *AccessoryService {
	return &AccessoryService{repo: repo, publisher: publisher}
}

func (s *AccessoryService) GetAll(ctx context.Context) ([]accessory.Accessory, error) {
	return s.repo.GetAll(ctx)
}

func (s *AccessoryService) GetByID(ctx context.Context, id int) (*accessory.Accessory, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AccessoryService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *AccessoryService) Create(ctx context.Context, data *accessory.Accessory) (*accessory.Accessory, error) {
	if strings.TrimSpace(data.Name) == "" {
		return nil, serrors.New(serrors.KindInvalidInput, "accessory name is required")
	}
	if data.Quantity <= 0 {
		data.Quantity = 1
	}
	if data.QuantityAvailable <= 0 || data.QuantityAvailable > data.Quantity {
		data.QuantityAvailable = data.Quantity
	}

	var created *accessory.Accessory
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
		ItemType: activity.ItemTypeAccessory,
		ItemID:   created.ID,
		Details:  fmt.Sprintf("Created accessory %s", created.Name),
	})
	return created, nil
}

func (s *AccessoryService) Update(ctx context.Context, data *accessory.Accessory) error {
	if err := composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.Update(txCtx, data)
	}); err != nil {
		return err
	}

	s.publisher.Publish(activity.RecordedEvent{
		Action:   "updated",
		ItemType: activity.ItemTypeAccessory,
		ItemID:   data.ID,
		Details:  fmt.Sprintf("Updated accessory %s", data.Name),
	})
	return nil
}

func (s *AccessoryService) Delete(ctx context.Context, id int) error {
	if err := composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, id)
	}); err != nil {
		return err
	}

	s.publisher.Publish(activity.RecordedEvent{
		Action:   "deleted",
		ItemType: activity.ItemTypeAccessory,
		ItemID:   id,
		Details:  fmt.Sprintf("Deleted accessory %d", id),
	})
	return nil
}
