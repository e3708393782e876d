package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/itam-labs/assetdesk/modules/assets/domain/component"
	"github.com/itam-labs/assetdesk/modules/core/domain/activity"
	"github.com/itam-labs/assetdesk/pkg/composables"
	"github.com/itam-labs/assetdesk/pkg/eventbus"
	"github.com/itam-labs/assetdesk/pkg/serrors"
)

type ComponentService struct {
	repo      component.Repository
	publisher eventbus.EventBus
}

func NewComponentService(repo component.Repository, publisher eventbus.EventBus) *ComponentService {
	return &ComponentService{repo: repo, publisher: publisher}
}

func (s *ComponentService) GetAll(ctx context.Context) ([]component.Component, error) {
	return s.repo.GetAll(ctx)
}

func (s *ComponentService) GetByID(ctx context.Context, id int) (*component.Component, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ComponentService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *ComponentService) Create(ctx context.Context, data *component.Component) (*component.Component, error) {
	if strings.TrimSpace(data.Name) == "" {
		return nil, serrors.New(serrors.KindInvalidInput, "component name is required")
	}
	if data.Status == "" {
		data.Status = "available"
	}

	var created *component.Component
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
		ItemType: activity.ItemTypeComponent,
		ItemID:   created.ID,
		Details:  fmt.Sprintf("Created component %s", created.Name),
	})
	return created, nil
}

func (s *ComponentService) Update(ctx context.Context, data *component.Component) error {
	if err := composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.Update(txCtx, data)
	}); err != nil {
		return err
	}

	s.publisher.Publish(activity.RecordedEvent{
		Action:   "updated",
		ItemType: activity.ItemTypeComponent,
		ItemID:   data.ID,
		Details:  fmt.Sprintf("Updated component %s", data.Name),
	})
	return nil
}

func (s *ComponentService) Delete(ctx context.Context, id int) error {
	if err := composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, id)
	}); err != nil {
		return err
	}

	s.publisher.Publish(activity.RecordedEvent{
		Action:   "deleted",
		ItemType: activity.ItemTypeComponent,
		ItemID:   id,
		Details:  fmt.Sprintf("Deleted component %d", id),
	})
	return nil
}
