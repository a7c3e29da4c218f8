//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"chat-gate/domain"
	"chat-gate/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IUserRepository interface {
	CreateUser(user domain.User) error
	GetUser(id uuid.UUID) (domain.User, error)
	GetUsers(ids []uuid.UUID) ([]domain.User, error)
	GetUserByEmail(email string) (domain.User, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

// CreateUser persists the user together with its email index.
// An email can only be registered once, case insensitively.
func (u UserRepository) CreateUser(user domain.User) error {
	err := u.db.Update(func(txn *badger.Txn) error {
		emailKey := userEmailKey(user.Email)
		_, err := txn.Get(emailKey)
		switch {
		case err == nil:
			return errors.Validation("email", "already registered")
		case !isNotFound(err):
			return err
		}
		if err = txn.Set(userKey(user.ID), encodeUser(user)); err != nil {
			return err
		}
		return txn.Set(emailKey, user.ID[:])
	})
	return storeError("create user", err)
}

func (u UserRepository) GetUser(id uuid.UUID) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) (err error) {
		user, err = readUser(txn, id)
		return err
	})
	if err != nil {
		return domain.User{}, storeError("get user", err)
	}
	return user, nil
}

// GetUsers resolves every id in one read transaction.
// The first unknown id fails the whole lookup.
func (u UserRepository) GetUsers(ids []uuid.UUID) ([]domain.User, error) {
	users := make([]domain.User, 0, len(ids))
	err := u.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			user, err := readUser(txn, id)
			if err != nil {
				return err
			}
			users = append(users, user)
		}
		return nil
	})
	if err != nil {
		return nil, storeError("get users", err)
	}
	return users, nil
}

func (u UserRepository) GetUserByEmail(email string) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		raw, err := getValue(txn, userEmailKey(email))
		if isNotFound(err) {
			return errors.UserNotFound(email)
		}
		if err != nil {
			return err
		}
		id, err := uuid.FromBytes(raw)
		if err != nil {
			return err
		}
		user, err = readUser(txn, id)
		return err
	})
	if err != nil {
		return domain.User{}, storeError("get user by email", err)
	}
	return user, nil
}

func readUser(txn *badger.Txn, id uuid.UUID) (domain.User, error) {
	raw, err := getValue(txn, userKey(id))
	if isNotFound(err) {
		return domain.User{}, errors.UserNotFound(id.String())
	}
	if err != nil {
		return domain.User{}, err
	}
	return decodeUser(raw)
}
