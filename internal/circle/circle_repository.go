package circle

import (
	"context"
	"freet/internal/dbmysql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CircleRepository interface {
	CreateCircle(ctx context.Context, circle *dbmysql.Circle, memberIDs []int64) error
	GetCircleByID(ctx context.Context, circleID int64) (*dbmysql.Circle, error)
	GetByOwnerAndName(ctx context.Context, ownerID int64, name string) (*dbmysql.Circle, error)
	UpdateName(ctx context.Context, circleID int64, name string) error
	ReplaceMembers(ctx context.Context, circleID int64, memberIDs []int64) error
	AddMember(ctx context.Context, circleID, memberID int64) error
	ListMemberIDs(ctx context.Context, circleID int64) ([]int64, error)
	DeleteCircle(ctx context.Context, circleID int64) error
	ListByCreator(ctx context.Context, creatorID int64) ([]*dbmysql.Circle, error)
	ListByMember(ctx context.Context, memberID int64) ([]*dbmysql.Circle, error)
	DeleteAllByCreator(ctx context.Context, creatorID int64) error
}

type circleRepository struct {
	db *gorm.DB
}

func NewCircleRepository(db *gorm.DB) CircleRepository {
	return &circleRepository{db: db}
}

func (r *circleRepository) CreateCircle(ctx context.Context, circle *dbmysql.Circle, memberIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(circle).Error; err != nil {
			return err
		}
		for _, memberID := range memberIDs {
			member := &dbmysql.CircleMember{CircleID: circle.CircleID, MemberID: memberID}
			if err := tx.Create(member).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *circleRepository) GetCircleByID(ctx context.Context, circleID int64) (*dbmysql.Circle, error) {
	var circle dbmysql.Circle
	err := r.db.WithContext(ctx).
		Preload("Members").
		First(&circle, "circle_id = ?", circleID).Error
	if err != nil {
		return nil, err
	}
	return &circle, nil
}

// GetByOwnerAndName matches exactly and case-sensitively, the same rule the
// create-time uniqueness check relies on.
func (r *circleRepository) GetByOwnerAndName(ctx context.Context, ownerID int64, name string) (*dbmysql.Circle, error) {
	var circle dbmysql.Circle
	err := r.db.WithContext(ctx).
		Preload("Members").
		Where("creator_id = ? AND BINARY name = ?", ownerID, name).
		First(&circle).Error
	if err != nil {
		return nil, err
	}
	return &circle, nil
}

func (r *circleRepository) UpdateName(ctx context.Context, circleID int64, name string) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Circle{}).
		Where("circle_id = ?", circleID).
		Update("name", name).Error
}

func (r *circleRepository) ReplaceMembers(ctx context.Context, circleID int64, memberIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("circle_id = ?", circleID).Delete(&dbmysql.CircleMember{}).Error; err != nil {
			return err
		}
		for _, memberID := range memberIDs {
			member := &dbmysql.CircleMember{CircleID: circleID, MemberID: memberID}
			if err := tx.Create(member).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// AddMember is idempotent: re-adding an existing member is a no-op.
func (r *circleRepository) AddMember(ctx context.Context, circleID, memberID int64) error {
	member := &dbmysql.CircleMember{CircleID: circleID, MemberID: memberID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(member).Error
}

func (r *circleRepository) ListMemberIDs(ctx context.Context, circleID int64) ([]int64, error) {
	var memberIDs []int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.CircleMember{}).
		Where("circle_id = ?", circleID).
		Pluck("member_id", &memberIDs).Error
	return memberIDs, err
}

func (r *circleRepository) DeleteCircle(ctx context.Context, circleID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("circle_id = ?", circleID).Delete(&dbmysql.CircleMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&dbmysql.Circle{}, "circle_id = ?", circleID).Error
	})
}

func (r *circleRepository) ListByCreator(ctx context.Context, creatorID int64) ([]*dbmysql.Circle, error) {
	var circles []*dbmysql.Circle
	err := r.db.WithContext(ctx).
		Preload("Members").
		Where("creator_id = ?", creatorID).
		Order("circle_id").
		Find(&circles).Error
	return circles, err
}

func (r *circleRepository) ListByMember(ctx context.Context, memberID int64) ([]*dbmysql.Circle, error) {
	var circles []*dbmysql.Circle
	err := r.db.WithContext(ctx).
		Preload("Members").
		Joins("JOIN circle_members ON circle_members.circle_id = circles.circle_id").
		Where("circle_members.member_id = ?", memberID).
		Order("circles.circle_id").
		Find(&circles).Error
	return circles, err
}

func (r *circleRepository) DeleteAllByCreator(ctx context.Context, creatorID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var circleIDs []int64
		if err := tx.Model(&dbmysql.Circle{}).
			Where("creator_id = ?", creatorID).
			Pluck("circle_id", &circleIDs).Error; err != nil {
			return err
		}
		if len(circleIDs) > 0 {
			if err := tx.Where("circle_id IN ?", circleIDs).Delete(&dbmysql.CircleMember{}).Error; err != nil {
				return err
			}
		}
		return tx.Where("creator_id = ?", creatorID).Delete(&dbmysql.Circle{}).Error
	})
}
