package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/itam-labs/assetdesk/modules/assets/domain/bitlocker"
	"github.com/itam-labs/assetdesk/modules/core/domain/activity"
	"github.com/itam-labs/assetdesk/pkg/composables"
	"github.com/itam-labs/assetdesk/pkg/eventbus"
	"github.com/itam-labs/assetdesk/pkg/serrors"
)

type BitLockerService struct {
	repo      bitlocker.Repository
	publisher eventbus.EventBus
}

func NewBitLockerService(repo bitlocker.Repository, publisher eventbus.EventBus) *BitLockerService {
	return &BitLockerService{repo: repo, publisher: publisher}
}

func (s *BitLockerService) GetAll(ctx context.Context) ([]bitlocker.Key, error) {
	return s.repo.GetAll(ctx)
}

func (s *BitLockerService) GetByID(ctx context.Context, id int) (*bitlocker.Key, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BitLockerService) Create(ctx context.Context, data *bitlocker.Key) (*bitlocker.Key, error) {
	if strings.TrimSpace(data.RecoveryKey) == "" {
		return nil, serrors.New(serrors.KindInvalidInput, "recovery key is required")
	}

	var created *bitlocker.Key
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
		ItemType: activity.ItemTypeBitLocker,
		ItemID:   created.ID,
		Details:  fmt.Sprintf("Stored recovery key %d", created.ID),
	})
	return created, nil
}

func (s *BitLockerService) Update(ctx context.Context, data *bitlocker.Key) error {
	if err := composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.Update(txCtx, data)
	}); err != nil {
		return err
	}

	s.publisher.Publish(activity.RecordedEvent{
		Action:   "updated",
		ItemType: activity.ItemTypeBitLocker,
		ItemID:   data.ID,
		Details:  fmt.Sprintf("Updated recovery key %d", data.ID),
	})
	return nil
}

func (s *BitLockerService) Delete(ctx context.Context, id int) error {
	if err := composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, id)
	}); err != nil {
		return err
	}

	s.publisher.Publish(activity.RecordedEvent{
		Action:   "deleted",
		ItemType: activity.ItemTypeBitLocker,
		ItemID:   id,
		Details:  fmt.Sprintf("Deleted recovery key %d", id),
	})
	return nil
}
