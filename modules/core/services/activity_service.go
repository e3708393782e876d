package services

import (
	"context"

	"github.com/itam-labs/assetdesk/modules/core/domain/activity"
	"github.com/itam-labs/assetdesk/pkg/composables"
	"github.com/itam-labs/assetdesk/pkg/eventbus"
)

type ActivityService struct {
	repo activity.Repository
}

func NewActivityService(repo activity.Repository) *ActivityService {
	return &ActivityService{repo: repo}
}

func (s *ActivityService) GetAll(ctx context.Context, limit int) ([]activity.Log, error) {
	return s.repo.GetAll(ctx, limit)
}

func (s *ActivityService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *ActivityService) Record(ctx context.Context, e activity.RecordedEvent) (*activity.Log, error) {
	var created *activity.Log
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.repo.Create(txCtx, &activity.Log{
			UserID:   e.UserID,
			Action:   e.Action,
			ItemType: e.ItemType,
			ItemID:   e.ItemID,
			Details:  e.Details,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RegisterSubscriber persists every RecordedEvent published on the bus. The
// given context must carry the pool; a failed write is logged, never raised,
// so audit logging cannot break the mutation that triggered it.
func (s *ActivityService) RegisterSubscriber(ctx context.Context, bus eventbus.EventBus) {
	bus.Subscribe(func(e activity.RecordedEvent) {
		if _, err := s.Record(ctx, e); err != nil {
			composables.UseLogger(ctx).WithError(err).Warn("failed to record activity log")
		}
	})
}
