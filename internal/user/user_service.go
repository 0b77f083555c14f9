package user

import (
	"context"
	"errors"
	"fmt"
	"freet/internal/common"
	"freet/internal/dbmysql"

	"gorm.io/gorm"
)

// Dependencies of the account lifecycle. Each is the smallest slice of
// another service the sagas here need.
type (
	// CircleLifecycle creates the Mutuals circle on signup and tears down
	// owned circles (privatizing their content) on account deletion.
	CircleLifecycle interface {
		CreateMutuals(ctx context.Context, ownerID int64) error
		DeleteAllForOwner(ctx context.Context, ownerID int64) error
	}
	// ContentPurger hard-deletes everything the user authored.
	ContentPurger interface {
		RemoveAllByAuthor(ctx context.Context, authorID int64) error
	}
	// FollowPurger removes every follow edge touching the user.
	FollowPurger interface {
		RemoveAllFor(ctx context.Context, userID int64) error
	}
)

type UserService interface {
	Register(ctx context.Context, username, password string) (*dbmysql.User, string, error)
	Login(ctx context.Context, username, password string) (*dbmysql.User, string, error)
	GetProfile(ctx context.Context, userID int64) (*dbmysql.User, error)
	ResolveUsername(ctx context.Context, username string) (*dbmysql.User, error)
	UpdateCredentials(ctx context.Context, userID int64, username, password string) (*dbmysql.User, error)
	DeleteAccount(ctx context.Context, userID int64) error
}

type userService struct {
	userRepo UserRepository
	circles  CircleLifecycle
	content  ContentPurger
	follows  FollowPurger
}

func NewUserService(userRepo UserRepository, circles CircleLifecycle, content ContentPurger, follows FollowPurger) UserService {
	return &userService{userRepo: userRepo, circles: circles, content: content, follows: follows}
}

// Register creates the account and, with it, the account's Mutuals circle.
func (s *userService) Register(ctx context.Context, username, password string) (*dbmysql.User, string, error) {
	if err := common.ValidateUsername(username); err != nil {
		return nil, "", err
	}
	if err := common.ValidatePassword(password); err != nil {
		return nil, "", err
	}

	exists, err := s.userRepo.CheckUserExists(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", fmt.Errorf("username %q is already taken: %w", username, common.ErrDuplicate)
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &dbmysql.User{
		Username:     username,
		PasswordHash: hashed,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	if err := s.circles.CreateMutuals(ctx, user.UserID); err != nil {
		return nil, "", err
	}

	token, err := common.GenerateToken(user.UserID, user.Username)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *userService) Login(ctx context.Context, username, password string) (*dbmysql.User, string, error) {
	if username == "" || password == "" {
		return nil, "", fmt.Errorf("username and password required: %w", common.ErrInvalidInput)
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("invalid username or password: %w", common.ErrForbidden)
		}
		return nil, "", err
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", fmt.Errorf("invalid username or password: %w", common.ErrForbidden)
	}

	token, err := common.GenerateToken(user.UserID, user.Username)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) GetProfile(ctx context.Context, userID int64) (*dbmysql.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, common.ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

// ResolveUsername maps a username to the account, distinguishing "does not
// exist" from access failures.
func (s *userService) ResolveUsername(ctx context.Context, username string) (*dbmysql.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %q: %w", username, common.ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateCredentials(ctx context.Context, userID int64, username, password string) (*dbmysql.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if username != "" && username != user.Username {
		if err := common.ValidateUsername(username); err != nil {
			return nil, err
		}
		exists, err := s.userRepo.CheckUserExists(ctx, username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("username %q is already taken: %w", username, common.ErrDuplicate)
		}
		user.Username = username
	}

	if password != "" {
		if err := common.ValidatePassword(password); err != nil {
			return nil, err
		}
		hashed, err := common.HashPassword(password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount runs the account-deletion saga in a fixed order: the user
// row, the user's own content, the content hidden behind the user's circles,
// the circles themselves, and finally every follow edge. Each step is
// idempotent so a partial failure can be retried from the top.
func (s *userService) DeleteAccount(ctx context.Context, userID int64) error {
	if _, err := s.GetProfile(ctx, userID); err != nil {
		return err
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return err
	}
	if err := s.content.RemoveAllByAuthor(ctx, userID); err != nil {
		return err
	}
	if err := s.circles.DeleteAllForOwner(ctx, userID); err != nil {
		return err
	}
	return s.follows.RemoveAllFor(ctx, userID)
}
