// Package visibility is the decision point for who may see what. It owns no
// storage and never mutates; every call re-evaluates against the stores, so
// a circle deleted after a stale existence check still denies at read time.
package visibility

import (
	"context"
	"errors"
	"fmt"
	"freet/internal/common"
	"freet/internal/dbmysql"

	"gorm.io/gorm"
)

// CircleReader is the slice of the circle store the engine reads.
// *circle.CircleRepository satisfies it.
type CircleReader interface {
	GetCircleByID(ctx context.Context, circleID int64) (*dbmysql.Circle, error)
	ListByCreator(ctx context.Context, creatorID int64) ([]*dbmysql.Circle, error)
	ListByMember(ctx context.Context, memberID int64) ([]*dbmysql.Circle, error)
}

// FollowReader is the slice of the relationship graph the engine reads.
type FollowReader interface {
	ListFollowing(ctx context.Context, followerID int64) ([]*dbmysql.Follow, error)
}

// ContentReader is the slice of the content store the engine reads.
type ContentReader interface {
	ListAllByAuthor(ctx context.Context, authorID int64) ([]*dbmysql.Freet, error)
	ListAllViewableIn(ctx context.Context, circleIDs []int64) ([]*dbmysql.Freet, error)
	ListVisibleByAuthor(ctx context.Context, circleIDs []int64, authorID int64) ([]*dbmysql.Freet, error)
	ListFollowingFeed(ctx context.Context, circleIDs []int64, followeeIDs []int64) ([]*dbmysql.Freet, error)
}

type Engine struct {
	circles CircleReader
	follows FollowReader
	content ContentReader
}

func NewEngine(circles CircleReader, follows FollowReader, content ContentReader) *Engine {
	return &Engine{circles: circles, follows: follows, content: content}
}

// CanView decides whether the viewer may see the item.
//
// Private strictly dominates circle scoping: a private item is visible to
// its author only, even to members of its circle. A non-private item with no
// circle is public. Otherwise the circle's creator and members are admitted.
func (e *Engine) CanView(ctx context.Context, viewerID int64, item *dbmysql.Freet) (bool, error) {
	if item.Private {
		return viewerID == item.AuthorID, nil
	}

	if item.CircleID == nil {
		return true, nil
	}

	circle, err := e.circles.GetCircleByID(ctx, *item.CircleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("circle %d: %w", *item.CircleID, common.ErrNotFound)
		}
		return false, err
	}

	if viewerID == circle.CreatorID {
		return true, nil
	}
	for _, m := range circle.Members {
		if m.MemberID == viewerID {
			return true, nil
		}
	}
	return false, nil
}

// OwnFeed returns every public item plus every item scoped to a circle the
// viewer created or belongs to. Implemented as a set filter over circle ids
// rather than a per-item CanView sweep.
func (e *Engine) OwnFeed(ctx context.Context, viewerID int64) ([]*dbmysql.Freet, error) {
	admissible, err := e.admissibleCircleIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	return e.content.ListAllViewableIn(ctx, admissible)
}

// AuthorFeed returns the author's items visible to the viewer. Self-view
// bypasses circle checks entirely; otherwise admission runs over the circles
// the author created that the viewer belongs to.
func (e *Engine) AuthorFeed(ctx context.Context, viewerID, authorID int64) ([]*dbmysql.Freet, error) {
	if viewerID == authorID {
		return e.content.ListAllByAuthor(ctx, authorID)
	}

	authorCircles, err := e.circles.ListByCreator(ctx, authorID)
	if err != nil {
		return nil, err
	}
	viewerCircles, err := e.circles.ListByMember(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	memberOf := make(map[int64]bool, len(viewerCircles))
	for _, c := range viewerCircles {
		memberOf[c.CircleID] = true
	}

	var overlap []int64
	for _, c := range authorCircles {
		if memberOf[c.CircleID] {
			overlap = append(overlap, c.CircleID)
		}
	}

	return e.content.ListVisibleByAuthor(ctx, overlap, authorID)
}

// FollowingFeed returns public-or-admissible items authored by users the
// viewer follows.
func (e *Engine) FollowingFeed(ctx context.Context, viewerID int64) ([]*dbmysql.Freet, error) {
	following, err := e.follows.ListFollowing(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	followeeIDs := make([]int64, 0, len(following))
	for _, f := range following {
		followeeIDs = append(followeeIDs, f.FolloweeID)
	}

	viewerCircles, err := e.circles.ListByMember(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	circleIDs := make([]int64, 0, len(viewerCircles))
	for _, c := range viewerCircles {
		circleIDs = append(circleIDs, c.CircleID)
	}

	return e.content.ListFollowingFeed(ctx, circleIDs, followeeIDs)
}

func (e *Engine) admissibleCircleIDs(ctx context.Context, viewerID int64) ([]int64, error) {
	owned, err := e.circles.ListByCreator(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	memberOf, err := e.circles.ListByMember(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]bool, len(owned)+len(memberOf))
	ids := make([]int64, 0, len(owned)+len(memberOf))
	for _, c := range owned {
		if !seen[c.CircleID] {
			seen[c.CircleID] = true
			ids = append(ids, c.CircleID)
		}
	}
	for _, c := range memberOf {
		if !seen[c.CircleID] {
			seen[c.CircleID] = true
			ids = append(ids, c.CircleID)
		}
	}
	return ids, nil
}
