package circle

import (
	"context"
	"errors"
	"fmt"
	"freet/internal/common"
	"freet/internal/dbmysql"

	"gorm.io/gorm"
)

// ContentPrivatizer is the slice of the content store the circle lifecycle
// needs: when a circle goes away its content is hidden, never removed.
type ContentPrivatizer interface {
	PrivatizeByCircle(ctx context.Context, circleID int64) error
}

type CircleService interface {
	CreateMutuals(ctx context.Context, ownerID int64) error
	Create(ctx context.Context, ownerID int64, name string, members []int64) (*dbmysql.Circle, error)
	Rename(ctx context.Context, requesterID, circleID int64, newName string) (*dbmysql.Circle, error)
	SetMembers(ctx context.Context, requesterID, circleID int64, members []int64) (*dbmysql.Circle, error)
	AddMemberToMutuals(ctx context.Context, ownerID, memberID int64) error
	Delete(ctx context.Context, requesterID, circleID int64) error
	Get(ctx context.Context, circleID int64) (*dbmysql.Circle, error)
	ByOwnerAndName(ctx context.Context, ownerID int64, name string) (*dbmysql.Circle, error)
	CirclesOwnedBy(ctx context.Context, userID int64) ([]*dbmysql.Circle, error)
	CirclesContainingMember(ctx context.Context, userID int64) ([]*dbmysql.Circle, error)
	DeleteAllForOwner(ctx context.Context, ownerID int64) error
}

type circleService struct {
	circleRepo CircleRepository
	content    ContentPrivatizer
}

func NewCircleService(circleRepo CircleRepository, content ContentPrivatizer) CircleService {
	return &circleService{circleRepo: circleRepo, content: content}
}

// CreateMutuals runs once per new account and creates the undeletable
// Mutuals circle with an empty membership.
func (s *circleService) CreateMutuals(ctx context.Context, ownerID int64) error {
	mutuals := &dbmysql.Circle{
		CreatorID: ownerID,
		Name:      dbmysql.MutualsName,
		Deletable: false,
	}
	return s.circleRepo.CreateCircle(ctx, mutuals, nil)
}

func (s *circleService) Create(ctx context.Context, ownerID int64, name string, members []int64) (*dbmysql.Circle, error) {
	if err := common.ValidateCircleName(name); err != nil {
		return nil, err
	}

	existing, err := s.circleRepo.GetByOwnerAndName(ctx, ownerID, name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("circle named %q already exists: %w", name, common.ErrDuplicate)
	}

	circle := &dbmysql.Circle{
		CreatorID: ownerID,
		Name:      name,
		Deletable: true,
	}
	if err := s.circleRepo.CreateCircle(ctx, circle, dedupe(members)); err != nil {
		return nil, err
	}

	return s.circleRepo.GetCircleByID(ctx, circle.CircleID)
}

func (s *circleService) Rename(ctx context.Context, requesterID, circleID int64, newName string) (*dbmysql.Circle, error) {
	circle, err := s.loadOwned(ctx, requesterID, circleID)
	if err != nil {
		return nil, err
	}
	if !circle.Deletable {
		return nil, fmt.Errorf("the Mutuals circle cannot be renamed: %w", common.ErrNotDeletable)
	}

	if err := common.ValidateCircleName(newName); err != nil {
		return nil, err
	}

	existing, err := s.circleRepo.GetByOwnerAndName(ctx, circle.CreatorID, newName)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil && existing.CircleID != circleID {
		return nil, fmt.Errorf("circle named %q already exists: %w", newName, common.ErrDuplicate)
	}

	if err := s.circleRepo.UpdateName(ctx, circleID, newName); err != nil {
		return nil, err
	}

	return s.circleRepo.GetCircleByID(ctx, circleID)
}

func (s *circleService) SetMembers(ctx context.Context, requesterID, circleID int64, members []int64) (*dbmysql.Circle, error) {
	circle, err := s.loadOwned(ctx, requesterID, circleID)
	if err != nil {
		return nil, err
	}
	if !circle.Deletable {
		// Mutuals membership changes only through the reciprocity cascade.
		return nil, fmt.Errorf("the Mutuals circle cannot be edited: %w", common.ErrForbidden)
	}

	if err := s.circleRepo.ReplaceMembers(ctx, circleID, dedupe(members)); err != nil {
		return nil, err
	}

	return s.circleRepo.GetCircleByID(ctx, circleID)
}

// AddMemberToMutuals is the reciprocity-cascade helper. It is idempotent so
// a partially applied cascade can be retried safely.
func (s *circleService) AddMemberToMutuals(ctx context.Context, ownerID, memberID int64) error {
	mutuals, err := s.circleRepo.GetByOwnerAndName(ctx, ownerID, dbmysql.MutualsName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("mutuals circle for user %d: %w", ownerID, common.ErrNotFound)
		}
		return err
	}
	return s.circleRepo.AddMember(ctx, mutuals.CircleID, memberID)
}

// Delete removes the circle and privatizes every freet and reply that was
// scoped to it. The content stays in storage, hidden to everyone but its
// author.
func (s *circleService) Delete(ctx context.Context, requesterID, circleID int64) error {
	circle, err := s.loadOwned(ctx, requesterID, circleID)
	if err != nil {
		return err
	}
	if !circle.Deletable {
		return fmt.Errorf("the Mutuals circle cannot be deleted: %w", common.ErrNotDeletable)
	}

	if err := s.circleRepo.DeleteCircle(ctx, circleID); err != nil {
		return err
	}

	return s.content.PrivatizeByCircle(ctx, circleID)
}

func (s *circleService) Get(ctx context.Context, circleID int64) (*dbmysql.Circle, error) {
	circle, err := s.circleRepo.GetCircleByID(ctx, circleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("circle %d: %w", circleID, common.ErrNotFound)
		}
		return nil, err
	}
	return circle, nil
}

func (s *circleService) ByOwnerAndName(ctx context.Context, ownerID int64, name string) (*dbmysql.Circle, error) {
	circle, err := s.circleRepo.GetByOwnerAndName(ctx, ownerID, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("circle named %q: %w", name, common.ErrNotFound)
		}
		return nil, err
	}
	return circle, nil
}

func (s *circleService) CirclesOwnedBy(ctx context.Context, userID int64) ([]*dbmysql.Circle, error) {
	return s.circleRepo.ListByCreator(ctx, userID)
}

func (s *circleService) CirclesContainingMember(ctx context.Context, userID int64) ([]*dbmysql.Circle, error) {
	return s.circleRepo.ListByMember(ctx, userID)
}

// DeleteAllForOwner is the account-deletion leg: privatize the content of
// every owned circle (including Mutuals), then drop the circles themselves.
func (s *circleService) DeleteAllForOwner(ctx context.Context, ownerID int64) error {
	circles, err := s.circleRepo.ListByCreator(ctx, ownerID)
	if err != nil {
		return err
	}
	for _, c := range circles {
		if err := s.content.PrivatizeByCircle(ctx, c.CircleID); err != nil {
			return err
		}
	}
	return s.circleRepo.DeleteAllByCreator(ctx, ownerID)
}

func (s *circleService) loadOwned(ctx context.Context, requesterID, circleID int64) (*dbmysql.Circle, error) {
	circle, err := s.circleRepo.GetCircleByID(ctx, circleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("circle %d: %w", circleID, common.ErrNotFound)
		}
		return nil, err
	}
	if circle.CreatorID != requesterID {
		return nil, fmt.Errorf("cannot modify another user's circle: %w", common.ErrForbidden)
	}
	return circle, nil
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
