package service

import (
	"TimeCapsule/internal/model"
	"TimeCapsule/internal/repo"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, in model.InsertUser) (*model.User, error) {
	args := m.Called(ctx, in)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUser(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

// у каждого подтеста свой мок, чтобы вызовы прошлых подтестов не учитывались
func newUserServiceWithMock() (*mockUserRepo, *UserService) {
	m := new(mockUserRepo)
	return m, NewUserService(m)
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("ok when login free", func(t *testing.T) {
		m, svc := newUserServiceWithMock()
		m.On("GetUserByUsername", mock.Anything, "john").Return((*model.User)(nil), nil).Once()
		created := &model.User{ID: 10, Username: "john"}
		m.On("CreateUser", mock.Anything, mock.MatchedBy(func(in model.InsertUser) bool {
			return in.Username == "john" &&
				bcrypt.CompareHashAndPassword([]byte(in.Password), []byte("p@ss")) == nil
		})).Return(created, nil).Once()

		user, err := svc.Register(ctx, "john", "p@ss")
		assert.NoError(t, err)
		assert.Equal(t, int64(10), user.ID)
		m.AssertExpectations(t)
	})

	t.Run("conflict when login taken", func(t *testing.T) {
		m, svc := newUserServiceWithMock()
		m.On("GetUserByUsername", mock.Anything, "john").Return(&model.User{ID: 1, Username: "john"}, nil).Once()

		user, err := svc.Register(ctx, "john", "p@ss")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrLoginTaken)
		m.AssertExpectations(t)
	})

	t.Run("conflict on concurrent insert", func(t *testing.T) {
		m, svc := newUserServiceWithMock()
		m.On("GetUserByUsername", mock.Anything, "john").Return((*model.User)(nil), nil).Once()
		m.On("CreateUser", mock.Anything, mock.Anything).Return((*model.User)(nil), repo.ErrDuplicateUsername).Once()

		_, err := svc.Register(ctx, "john", "p@ss")
		assert.ErrorIs(t, err, ErrLoginTaken)
		m.AssertExpectations(t)
	})

	t.Run("empty login is a validation error", func(t *testing.T) {
		m, svc := newUserServiceWithMock()
		_, err := svc.Register(ctx, "  ", "p@ss")
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, "login", verr.Field)
		m.AssertNotCalled(t, "GetUserByUsername", mock.Anything, mock.Anything)
		m.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("empty password is a validation error", func(t *testing.T) {
		m, svc := newUserServiceWithMock()
		_, err := svc.Register(ctx, "john", "")
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, "password", verr.Field)
		m.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()

	// готовим хеш для пароля "secret"
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)

	t.Run("ok with valid credentials", func(t *testing.T) {
		m, svc := newUserServiceWithMock()
		m.On("GetUserByUsername", mock.Anything, "alice").Return(&model.User{ID: 2, Username: "alice", Password: string(hash)}, nil).Once()

		user, err := svc.Login(ctx, "alice", "secret")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), user.ID)
		m.AssertExpectations(t)
	})

	t.Run("invalid password", func(t *testing.T) {
		m, svc := newUserServiceWithMock()
		m.On("GetUserByUsername", mock.Anything, "alice").Return(&model.User{ID: 2, Username: "alice", Password: string(hash)}, nil).Once()

		user, err := svc.Login(ctx, "alice", "wrong")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		m.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		m, svc := newUserServiceWithMock()
		m.On("GetUserByUsername", mock.Anything, "bob").Return((*model.User)(nil), nil).Once()

		_, err := svc.Login(ctx, "bob", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		m.AssertExpectations(t)
	})

	t.Run("storage failure is not hidden", func(t *testing.T) {
		m, svc := newUserServiceWithMock()
		m.On("GetUserByUsername", mock.Anything, "alice").Return((*model.User)(nil), errors.New("db")).Once()

		_, err := svc.Login(ctx, "alice", "secret")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
		m.AssertExpectations(t)
	})
}

func TestUserService_Get(t *testing.T) {
	m, svc := newUserServiceWithMock()

	m.On("GetUser", mock.Anything, int64(3)).Return(&model.User{ID: 3, Username: "c"}, nil).Once()
	m.On("GetUser", mock.Anything, int64(4)).Return((*model.User)(nil), nil).Once()

	u, err := svc.Get(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, "c", u.Username)

	_, err = svc.Get(context.Background(), 4)
	assert.ErrorIs(t, err, ErrNotFound)
	m.AssertExpectations(t)
}
