package follow

import (
	"context"
	"fmt"
	"freet/internal/common"
	"freet/internal/dbmysql"
)

// MutualsCircles is the slice of the circle store this service needs for the
// reciprocity cascade.
type MutualsCircles interface {
	AddMemberToMutuals(ctx context.Context, ownerID, memberID int64) error
}

type FollowService interface {
	Follow(ctx context.Context, followerID, followeeID int64) error
	Unfollow(ctx context.Context, followerID, followeeID int64) error
	Followers(ctx context.Context, userID int64) ([]*dbmysql.Follow, error)
	Following(ctx context.Context, userID int64) ([]*dbmysql.Follow, error)
	IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error)
	RemoveAllFor(ctx context.Context, userID int64) error
}

type followService struct {
	followRepo FollowRepository
	circles    MutualsCircles
}

func NewFollowService(followRepo FollowRepository, circles MutualsCircles) FollowService {
	return &followService{followRepo: followRepo, circles: circles}
}

// Follow creates the directed edge and runs the mutual-follow cascade: when
// this follow completes a reciprocal pair, each user is added to the other's
// Mutuals circle. Membership is never removed on unfollow.
func (s *followService) Follow(ctx context.Context, followerID, followeeID int64) error {
	if followerID == followeeID {
		return fmt.Errorf("cannot follow yourself: %w", common.ErrForbidden)
	}

	exists, err := s.followRepo.ExistsEdge(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("already following this user: %w", common.ErrDuplicate)
	}

	edge := &dbmysql.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
	}
	if err := s.followRepo.CreateFollow(ctx, edge); err != nil {
		return err
	}

	reciprocal, err := s.followRepo.ExistsEdge(ctx, followeeID, followerID)
	if err != nil {
		return err
	}
	if reciprocal {
		// Both legs are idempotent; a failure between them leaves
		// asymmetric membership repaired by a later retry.
		if err := s.circles.AddMemberToMutuals(ctx, followerID, followeeID); err != nil {
			return err
		}
		if err := s.circles.AddMemberToMutuals(ctx, followeeID, followerID); err != nil {
			return err
		}
	}

	return nil
}

func (s *followService) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	exists, err := s.followRepo.ExistsEdge(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("not following this user: %w", common.ErrNotFound)
	}

	return s.followRepo.DeleteFollow(ctx, followerID, followeeID)
}

func (s *followService) Followers(ctx context.Context, userID int64) ([]*dbmysql.Follow, error) {
	return s.followRepo.ListFollowers(ctx, userID)
}

func (s *followService) Following(ctx context.Context, userID int64) ([]*dbmysql.Follow, error) {
	return s.followRepo.ListFollowing(ctx, userID)
}

func (s *followService) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	return s.followRepo.ExistsEdge(ctx, followerID, followeeID)
}

// RemoveAllFor deletes every edge touching the user, in either direction.
// Invoked by the account-deletion saga.
func (s *followService) RemoveAllFor(ctx context.Context, userID int64) error {
	return s.followRepo.DeleteAllForUser(ctx, userID)
}
