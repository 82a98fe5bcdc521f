package service

import (
	"context"
	"errors"

	"github.com/Skotchmaster/storefront/internal/hash"
	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/internal/validate"
)

type UserService struct {
	Entity[models.User]
	Users  *repo.UserRepo
	Hasher hash.Hasher
}

func NewUserService(users *repo.UserRepo, hasher hash.Hasher, events Publisher) *UserService {
	if hasher == nil {
		hasher = hash.NewBcrypt(0)
	}
	return &UserService{
		Entity: newEntity(&users.GormRepo, events, TopicUsers, "user", func(u *models.User) uint { return u.ID }, viewAs(transport.NewUserResponse)),
		Users:  users,
		Hasher: hasher,
	}
}

func (s *UserService) Create(ctx context.Context, req transport.CreateUserRequest) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "user.create")

	user, password, err := validate.CreateUser(req)
	if err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, user.Username, user.Email, 0); err != nil {
		return nil, err
	}

	digest, err := s.Hasher.Hash(password)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot hash the password", "error", err)
		return nil, err
	}
	user.PasswordHash = digest

	return s.create(ctx, &user)
}

func (s *UserService) Update(ctx context.Context, id uint, req transport.UpdateUserRequest) (*models.User, error) {
	return s.update(ctx, id, func(cur *models.User) error {
		next, password, err := validate.UpdateUser(*cur, req)
		if err != nil {
			return err
		}
		if err := s.checkUnique(ctx, next.Username, next.Email, id); err != nil {
			return err
		}
		if password != nil {
			digest, err := s.Hasher.Hash(*password)
			if err != nil {
				return err
			}
			next.PasswordHash = digest
		}
		*cur = next
		return nil
	})
}

// VerifyCredentials returns the user whose stored digest matches password.
func (s *UserService) VerifyCredentials(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.Hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) checkUnique(ctx context.Context, username, email string, excludeID uint) error {
	other, err := s.Users.FindConflicting(ctx, username, email, excludeID)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if other.Username == username {
		return conflict("username")
	}
	return conflict("email")
}
