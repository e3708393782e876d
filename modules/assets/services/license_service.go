package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/itam-labs/assetdesk/modules/assets/domain/license"
	"github.com/itam-labs/assetdesk/modules/core/domain/activity"
	"github.com/itam-labs/assetdesk/pkg/composables"
	"github.com/itam-labs/assetdesk/pkg/eventbus"
	"github.com/itam-labs/assetdesk/pkg/serrors"
)

type LicenseService struct {
	repo      license.Repository
	publisher eventbus.EventBus
}

func NewLicenseService(repo license.Repository, publisher eventbus.EventBus) *LicenseService {
	return &LicenseService{repo: repo, publisher: publisher}
}

func (s *LicenseService) GetAll(ctx context.Context) ([]license.License, error) {
	return s.repo.GetAll(ctx)
}

func (s *LicenseService) GetByID(ctx context.Context, id int) (*license.License, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *LicenseService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *LicenseService) CountExpiringWithin(ctx context.Context, days int) (int64, error) {
	return s.repo.CountExpiringWithin(ctx, days)
}

func (s *LicenseService) Create(ctx context.Context, data *license.License) (*license.License, error) {
	if strings.TrimSpace(data.Name) == "" || strings.TrimSpace(data.Key) == "" {
		return nil, serrors.New(serrors.KindInvalidInput, "license name and key are required")
	}
	if data.Seats <= 0 {
		data.Seats = 1
	}
	if data.SeatsAvailable <= 0 || data.SeatsAvailable > data.Seats {
		data.SeatsAvailable = data.Seats
	}

	var created *license.License
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
		ItemType: activity.ItemTypeLicense,
		ItemID:   created.ID,
		Details:  fmt.Sprintf("Created license %s", created.Name),
	})
	return created, nil
}

func (s *LicenseService) Update(ctx context.Context, data *license.License) error {
	if err := composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.Update(txCtx, data)
	}); err != nil {
		return err
	}

	s.publisher.Publish(activity.RecordedEvent{
		Action:   "updated",
		ItemType: activity.ItemTypeLicense,
		ItemID:   data.ID,
		Details:  fmt.Sprintf("Updated license %s", data.Name),
	})
	return nil
}

func (s *LicenseService) Delete(ctx context.Context, id int) error {
	if err := composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, id)
	}); err != nil {
		return err
	}

	s.publisher.Publish(activity.RecordedEvent{
		Action:   "deleted",
		ItemType: activity.ItemTypeLicense,
		ItemID:   id,
		Details:  fmt.Sprintf("Deleted license %d", id),
	})
	return nil
}
