package follow

import (
	"context"
	"freet/internal/dbmysql"

	"gorm.io/gorm"
)

type FollowRepository interface {
	CreateFollow(ctx context.Context, follow *dbmysql.Follow) error
	DeleteFollow(ctx context.Context, followerID, followeeID int64) error
	ExistsEdge(ctx context.Context, followerID, followeeID int64) (bool, error)
	ListFollowers(ctx context.Context, followeeID int64) ([]*dbmysql.Follow, error)
	ListFollowing(ctx context.Context, followerID int64) ([]*dbmysql.Follow, error)
	DeleteAllForUser(ctx context.Context, userID int64) error
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) CreateFollow(ctx context.Context, follow *dbmysql.Follow) error {
	return r.db.WithContext(ctx).Create(follow).Error
}

func (r *followRepository) DeleteFollow(ctx context.Context, followerID, followeeID int64) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&dbmysql.Follow{}).Error
}

func (r *followRepository) ExistsEdge(ctx context.Context, followerID, followeeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *followRepository) ListFollowers(ctx context.Context, followeeID int64) ([]*dbmysql.Follow, error) {
	var follows []*dbmysql.Follow
	err := r.db.WithContext(ctx).
		Where("followee_id = ?", followeeID).
		Order("id").
		Find(&follows).Error
	return follows, err
}

func (r *followRepository) ListFollowing(ctx context.Context, followerID int64) ([]*dbmysql.Follow, error) {
	var follows []*dbmysql.Follow
	err := r.db.WithContext(ctx).
		Where("follower_id = ?", followerID).
		Order("id").
		Find(&follows).Error
	return follows, err
}

func (r *followRepository) DeleteAllForUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? OR followee_id = ?", userID, userID).
		Delete(&dbmysql.Follow{}).Error
}
