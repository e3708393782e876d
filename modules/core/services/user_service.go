package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/itam-labs/assetdesk/modules/core/domain/activity"
	"github.com/itam-labs/assetdesk/modules/core/domain/user"
	"github.com/itam-labs/assetdesk/pkg/composables"
	"github.com/itam-labs/assetdesk/pkg/eventbus"
	"github.com/itam-labs/assetdesk/pkg/serrors"
)

const bcryptCost = 10

type UserService struct {
	repo      user.Repository
	publisher eventbus.EventBus
}

func NewUserService(repo user.Repository, publisher eventbus.EventBus) *UserService {
	return &UserService{repo: repo, publisher: publisher}
}

func (s *UserService) GetAll(ctx context.Context) ([]user.User, error) {
	return s.repo.GetAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id int) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// Create hashes the plaintext password, when one is supplied, before it ever
// reaches the store.
func (s *UserService) Create(ctx context.Context, data *user.User, password string) (*user.User, error) {
	if strings.TrimSpace(data.Name) == "" || strings.TrimSpace(data.Email) == "" {
		return nil, serrors.New(serrors.KindInvalidInput, "Name and email are required.")
	}
	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return nil, err
		}
		data.PasswordHash = string(hashed)
	}

	var created *user.User
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
		ItemType: activity.ItemTypeUser,
		ItemID:   created.ID,
		Details:  fmt.Sprintf("Created user %s", created.Name),
	})
	return created, nil
}

func (s *UserService) Update(ctx context.Context, data *user.User) error {
	if err := composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.Update(txCtx, data)
	}); err != nil {
		return err
	}

	s.publisher.Publish(activity.RecordedEvent{
		Action:   "updated",
		ItemType: activity.ItemTypeUser,
		ItemID:   data.ID,
		Details:  fmt.Sprintf("Updated user %s", data.Name),
	})
	return nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	if err := composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, id)
	}); err != nil {
		return err
	}

	s.publisher.Publish(activity.RecordedEvent{
		Action:   "deleted",
		ItemType: activity.ItemTypeUser,
		ItemID:   id,
		Details:  fmt.Sprintf("Deleted user %d", id),
	})
	return nil
}
