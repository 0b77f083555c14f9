package freet

import (
	"context"
	"freet/internal/dbmysql"

	"gorm.io/gorm"
)

type FreetRepository struct {
	db *gorm.DB
}

func NewFreetRepository(db *gorm.DB) *FreetRepository {
	return &FreetRepository{db: db}
}

// --------- CONTENT ---------
type Content interface {
	CreateFreet(ctx context.Context, freet *dbmysql.Freet) error
	GetFreetByID(ctx context.Context, id int64) (*dbmysql.Freet, error)
	UpdateContent(ctx context.Context, id int64, content string) error
	DeleteFreet(ctx context.Context, id int64) error
	DeleteManyByAuthor(ctx context.Context, authorID int64) error
	PrivatizeByCircle(ctx context.Context, circleID int64) error
	ListAllByAuthor(ctx context.Context, authorID int64) ([]*dbmysql.Freet, error)
	ListIDsByAuthor(ctx context.Context, authorID int64) ([]int64, error)
	ListReplies(ctx context.Context, parentID int64) ([]*dbmysql.Freet, error)
	ListAllViewableIn(ctx context.Context, circleIDs []int64) ([]*dbmysql.Freet, error)
	ListVisibleByAuthor(ctx context.Context, circleIDs []int64, authorID int64) ([]*dbmysql.Freet, error)
	ListFollowingFeed(ctx context.Context, circleIDs []int64, followeeIDs []int64) ([]*dbmysql.Freet, error)
}

func (r *FreetRepository) CreateFreet(ctx context.Context, freet *dbmysql.Freet) error {
	return r.db.WithContext(ctx).Create(freet).Error
}

func (r *FreetRepository) GetFreetByID(ctx context.Context, id int64) (*dbmysql.Freet, error) {
	var freet dbmysql.Freet
	err := r.db.WithContext(ctx).First(&freet, "freet_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &freet, nil
}

func (r *FreetRepository) UpdateContent(ctx context.Context, id int64, content string) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Freet{}).
		Where("freet_id = ?", id).
		Update("content", content).Error
}

func (r *FreetRepository) DeleteFreet(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&dbmysql.Freet{}, "freet_id = ?", id).Error
}

func (r *FreetRepository) DeleteManyByAuthor(ctx context.Context, authorID int64) error {
	return r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Delete(&dbmysql.Freet{}).Error
}

// PrivatizeByCircle hides every item scoped to the circle. Re-applying
// private=true is a no-op, so the cascade is safe to retry.
func (r *FreetRepository) PrivatizeByCircle(ctx context.Context, circleID int64) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Freet{}).
		Where("circle_id = ?", circleID).
		Update("private", true).Error
}

func (r *FreetRepository) ListAllByAuthor(ctx context.Context, authorID int64) ([]*dbmysql.Freet, error) {
	var freets []*dbmysql.Freet
	err := r.db.WithContext(ctx).
		Where("author_id = ? AND parent_id IS NULL", authorID).
		Order("updated_at DESC").
		Find(&freets).Error
	return freets, err
}

// ListIDsByAuthor returns ids of everything the author wrote, freets and
// replies alike. Used by the deletion cascades.
func (r *FreetRepository) ListIDsByAuthor(ctx context.Context, authorID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Freet{}).
		Where("author_id = ?", authorID).
		Pluck("freet_id", &ids).Error
	return ids, err
}

func (r *FreetRepository) ListReplies(ctx context.Context, parentID int64) ([]*dbmysql.Freet, error) {
	var replies []*dbmysql.Freet
	err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("updated_at DESC").
		Find(&replies).Error
	return replies, err
}

// ListAllViewableIn returns top-level items that are public or scoped to one
// of the given circles, excluding private ones.
func (r *FreetRepository) ListAllViewableIn(ctx context.Context, circleIDs []int64) ([]*dbmysql.Freet, error) {
	var freets []*dbmysql.Freet
	q := r.db.WithContext(ctx).
		Where("private = ? AND parent_id IS NULL", false)
	if len(circleIDs) > 0 {
		q = q.Where("circle_id IN ? OR circle_id IS NULL", circleIDs)
	} else {
		q = q.Where("circle_id IS NULL")
	}
	err := q.Order("updated_at DESC").Find(&freets).Error
	return freets, err
}

func (r *FreetRepository) ListVisibleByAuthor(ctx context.Context, circleIDs []int64, authorID int64) ([]*dbmysql.Freet, error) {
	var freets []*dbmysql.Freet
	q := r.db.WithContext(ctx).
		Where("author_id = ? AND private = ? AND parent_id IS NULL", authorID, false)
	if len(circleIDs) > 0 {
		q = q.Where("circle_id IN ? OR circle_id IS NULL", circleIDs)
	} else {
		q = q.Where("circle_id IS NULL")
	}
	err := q.Order("updated_at DESC").Find(&freets).Error
	return freets, err
}

func (r *FreetRepository) ListFollowingFeed(ctx context.Context, circleIDs []int64, followeeIDs []int64) ([]*dbmysql.Freet, error) {
	if len(followeeIDs) == 0 {
		return []*dbmysql.Freet{}, nil
	}
	var freets []*dbmysql.Freet
	q := r.db.WithContext(ctx).
		Where("author_id IN ? AND private = ? AND parent_id IS NULL", followeeIDs, false)
	if len(circleIDs) > 0 {
		q = q.Where("circle_id IN ? OR circle_id IS NULL", circleIDs)
	} else {
		q = q.Where("circle_id IS NULL")
	}
	err := q.Order("updated_at DESC").Find(&freets).Error
	return freets, err
}

// --------- LIKES ---------
type Likes interface {
	CreateLike(ctx context.Context, like *dbmysql.Like) error
	DeleteLike(ctx context.Context, userID, freetID int64) error
	ExistsLike(ctx context.Context, userID, freetID int64) (bool, error)
	CountByFreet(ctx context.Context, freetID int64) (int64, error)
	DeleteLikesByFreet(ctx context.Context, freetID int64) error
	DeleteLikesByUser(ctx context.Context, userID int64) error
}

func (r *FreetRepository) CreateLike(ctx context.Context, like *dbmysql.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *FreetRepository) DeleteLike(ctx context.Context, userID, freetID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND freet_id = ?", userID, freetID).
		Delete(&dbmysql.Like{}).Error
}

func (r *FreetRepository) ExistsLike(ctx context.Context, userID, freetID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Like{}).
		Where("user_id = ? AND freet_id = ?", userID, freetID).
		Count(&count).Error
	return count > 0, err
}

func (r *FreetRepository) CountByFreet(ctx context.Context, freetID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Like{}).
		Where("freet_id = ?", freetID).
		Count(&count).Error
	return count, err
}

func (r *FreetRepository) DeleteLikesByFreet(ctx context.Context, freetID int64) error {
	return r.db.WithContext(ctx).
		Where("freet_id = ?", freetID).
		Delete(&dbmysql.Like{}).Error
}

func (r *FreetRepository) DeleteLikesByUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&dbmysql.Like{}).Error
}
