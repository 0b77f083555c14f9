package freet

import (
	"context"
	"errors"
	"fmt"
	"freet/internal/common"
	"freet/internal/dbmysql"

	"gorm.io/gorm"
)

// Visibility is the admit-or-deny decision this service defers to before
// handing out content. *visibility.Engine satisfies it.
type Visibility interface {
	CanView(ctx context.Context, viewerID int64, item *dbmysql.Freet) (bool, error)
}

// CircleChecker validates that a circle a freet is being scoped to exists
// and belongs to the author. Best effort only: the circle can disappear
// between this check and the insert, and the read-time predicate covers
// that window.
type CircleChecker interface {
	GetCircleByID(ctx context.Context, circleID int64) (*dbmysql.Circle, error)
}

// ReportPurger removes report documents when content or its reporter is
// deleted.
type ReportPurger interface {
	DeleteReportsByFreet(ctx context.Context, freetID int64) error
	DeleteReportsByReporter(ctx context.Context, reporterID int64) error
}

type FreetService interface {
	Publish(ctx context.Context, authorID int64, content string, anonymous bool, circleID, parentID *int64) (*dbmysql.Freet, error)
	Edit(ctx context.Context, requesterID, freetID int64, content string) (*dbmysql.Freet, error)
	Delete(ctx context.Context, requesterID, freetID int64) error
	Remove(ctx context.Context, freetID int64) error
	Get(ctx context.Context, viewerID, freetID int64) (*dbmysql.Freet, error)
	Replies(ctx context.Context, viewerID, parentID int64) ([]*dbmysql.Freet, error)
	Like(ctx context.Context, userID, freetID int64) error
	Unlike(ctx context.Context, userID, freetID int64) error
	LikeCount(ctx context.Context, freetID int64) (int64, error)
	RemoveAllByAuthor(ctx context.Context, authorID int64) error
}

type freetService struct {
	contentRepo Content
	likeRepo    Likes
	circles     CircleChecker
	reports     ReportPurger
	vis         Visibility
}

func NewFreetService(c Content, l Likes, circles CircleChecker, reports ReportPurger, vis Visibility) FreetService {
	return &freetService{
		contentRepo: c,
		likeRepo:    l,
		circles:     circles,
		reports:     reports,
		vis:         vis,
	}
}

// Publish creates a freet (parentID nil) or a reply (parentID set). Content
// always starts with private=false; only the privacy cascades ever set it.
func (s *freetService) Publish(ctx context.Context, authorID int64, content string, anonymous bool, circleID, parentID *int64) (*dbmysql.Freet, error) {
	if err := common.ValidateFreetContent(content); err != nil {
		return nil, err
	}

	if parentID != nil {
		parent, err := s.load(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		ok, err := s.vis.CanView(ctx, authorID, parent)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("cannot reply to a freet you cannot view: %w", common.ErrForbidden)
		}
		// A reply stays in its parent's thread: it carries the parent's
		// circle, never one the replier picks.
		circleID = parent.CircleID
	} else if circleID != nil {
		circle, err := s.circles.GetCircleByID(ctx, *circleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("circle %d: %w", *circleID, common.ErrNotFound)
			}
			return nil, err
		}
		if circle.CreatorID != authorID {
			return nil, fmt.Errorf("cannot post to another user's circle: %w", common.ErrForbidden)
		}
	}

	item := &dbmysql.Freet{
		AuthorID:  authorID,
		Content:   content,
		Anonymous: anonymous,
		CircleID:  circleID,
		Private:   false,
		ParentID:  parentID,
	}
	if err := s.contentRepo.CreateFreet(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *freetService) Edit(ctx context.Context, requesterID, freetID int64, content string) (*dbmysql.Freet, error) {
	if err := common.ValidateFreetContent(content); err != nil {
		return nil, err
	}

	item, err := s.load(ctx, freetID)
	if err != nil {
		return nil, err
	}
	if item.AuthorID != requesterID {
		return nil, fmt.Errorf("cannot modify other users' freets: %w", common.ErrForbidden)
	}

	if err := s.contentRepo.UpdateContent(ctx, freetID, content); err != nil {
		return nil, err
	}
	return s.load(ctx, freetID)
}

// Delete is the author-initiated hard delete.
func (s *freetService) Delete(ctx context.Context, requesterID, freetID int64) error {
	item, err := s.load(ctx, freetID)
	if err != nil {
		return err
	}
	if item.AuthorID != requesterID {
		return fmt.Errorf("cannot delete other users' freets: %w", common.ErrForbidden)
	}
	return s.Remove(ctx, freetID)
}

// Remove hard-deletes the item and its likes and reports without an
// authorship check. Used by Delete and by moderation takedowns.
func (s *freetService) Remove(ctx context.Context, freetID int64) error {
	if err := s.likeRepo.DeleteLikesByFreet(ctx, freetID); err != nil {
		return err
	}
	if err := s.reports.DeleteReportsByFreet(ctx, freetID); err != nil {
		return err
	}
	return s.contentRepo.DeleteFreet(ctx, freetID)
}

func (s *freetService) Get(ctx context.Context, viewerID, freetID int64) (*dbmysql.Freet, error) {
	item, err := s.load(ctx, freetID)
	if err != nil {
		return nil, err
	}

	ok, err := s.vis.CanView(ctx, viewerID, item)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("you do not have access to view this freet: %w", common.ErrForbidden)
	}
	return item, nil
}

// Replies returns the replies under a freet the viewer can see. Each reply
// carries its own circle and private flags and is filtered individually.
func (s *freetService) Replies(ctx context.Context, viewerID, parentID int64) ([]*dbmysql.Freet, error) {
	if _, err := s.Get(ctx, viewerID, parentID); err != nil {
		return nil, err
	}

	replies, err := s.contentRepo.ListReplies(ctx, parentID)
	if err != nil {
		return nil, err
	}

	visible := make([]*dbmysql.Freet, 0, len(replies))
	for _, reply := range replies {
		ok, err := s.vis.CanView(ctx, viewerID, reply)
		if err != nil {
			return nil, err
		}
		if ok {
			visible = append(visible, reply)
		}
	}
	return visible, nil
}

func (s *freetService) Like(ctx context.Context, userID, freetID int64) error {
	if _, err := s.Get(ctx, userID, freetID); err != nil {
		return err
	}

	exists, err := s.likeRepo.ExistsLike(ctx, userID, freetID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("freet already liked: %w", common.ErrDuplicate)
	}

	return s.likeRepo.CreateLike(ctx, &dbmysql.Like{UserID: userID, FreetID: freetID})
}

func (s *freetService) Unlike(ctx context.Context, userID, freetID int64) error {
	exists, err := s.likeRepo.ExistsLike(ctx, userID, freetID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("freet not liked: %w", common.ErrNotFound)
	}
	return s.likeRepo.DeleteLike(ctx, userID, freetID)
}

func (s *freetService) LikeCount(ctx context.Context, freetID int64) (int64, error) {
	return s.likeRepo.CountByFreet(ctx, freetID)
}

// RemoveAllByAuthor is the account-deletion leg: hard-delete everything the
// user wrote, the likes and reports on it, and the likes and reports the
// user left elsewhere.
func (s *freetService) RemoveAllByAuthor(ctx context.Context, authorID int64) error {
	ids, err := s.contentRepo.ListIDsByAuthor(ctx, authorID)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := s.likeRepo.DeleteLikesByFreet(ctx, id); err != nil {
			return err
		}
		if err := s.reports.DeleteReportsByFreet(ctx, id); err != nil {
			return err
		}
	}
	if err := s.likeRepo.DeleteLikesByUser(ctx, authorID); err != nil {
		return err
	}
	if err := s.reports.DeleteReportsByReporter(ctx, authorID); err != nil {
		return err
	}
	return s.contentRepo.DeleteManyByAuthor(ctx, authorID)
}

func (s *freetService) load(ctx context.Context, freetID int64) (*dbmysql.Freet, error) {
	item, err := s.contentRepo.GetFreetByID(ctx, freetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("freet %d: %w", freetID, common.ErrNotFound)
		}
		return nil, err
	}
	return item, nil
}
