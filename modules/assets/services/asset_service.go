package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/itam-labs/assetdesk/modules/assets/domain/asset"
	"github.com/itam-labs/assetdesk/modules/core/domain/activity"
	"github.com/itam-labs/assetdesk/pkg/composables"
	"github.com/itam-labs/assetdesk/pkg/eventbus"
	"github.com/itam-labs/assetdesk/pkg/serrors"
)

type AssetService struct {
	repo      asset.Repository
	publisher eventbus.EventBus
}

func NewAssetService(repo asset.Repository, publisher eventbus.EventBus) *AssetService {
	return &AssetService{repo: repo, publisher: publisher}
}

func (s *AssetService) GetAll(ctx context.Context) ([]asset.Asset, error) {
	return s.repo.GetAll(ctx)
}

func (s *AssetService) GetByID(ctx context.Context, id int) (*asset.Asset, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AssetService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *AssetService) CountByStatus(ctx context.Context, status asset.Status) (int64, error) {
	return s.repo.CountByStatus(ctx, status)
}

// Create applies the single-record defaults: the tag is mandatory and the
// status falls back to available when unknown.
func (s *AssetService) Create(ctx context.Context, data *asset.Asset) (*asset.Asset, error) {
	if strings.TrimSpace(data.AssetTag) == "" {
		return nil, serrors.New(serrors.KindInvalidInput, "asset tag is required")
	}
	data.Status = asset.NormalizeStatus(string(data.Status))

	var created *asset.Asset
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
		ItemType: activity.ItemTypeAsset,
		ItemID:   created.ID,
		Details:  fmt.Sprintf("Created asset %s", created.AssetTag),
	})
	return created, nil
}

func (s *AssetService) Update(ctx context.Context, data *asset.Asset) error {
	if strings.TrimSpace(data.AssetTag) == "" {
		return serrors.New(serrors.KindInvalidInput, "asset tag is required")
	}
	data.Status = asset.NormalizeStatus(string(data.Status))

	if err := composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.Update(txCtx, data)
	}); err != nil {
		return err
	}

	s.publisher.Publish(activity.RecordedEvent{
		Action:   "updated",
		ItemType: activity.ItemTypeAsset,
		ItemID:   data.ID,
		Details:  fmt.Sprintf("Updated asset %s", data.AssetTag),
	})
	return nil
}

func (s *AssetService) Delete(ctx context.Context, id int) error {
	if err := composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, id)
	}); err != nil {
		return err
	}

	s.publisher.Publish(activity.RecordedEvent{
		Action:   "deleted",
		ItemType: activity.ItemTypeAsset,
		ItemID:   id,
		Details:  fmt.Sprintf("Deleted asset %d", id),
	})
	return nil
}
