package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "tester",
		Email:    "test@example.com",
		Password: "Password123!",
		FullName: "Test User",
		Address:  "1 Test Street",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = 42
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateToken(int64(42), entity.RoleCustomer).
		Return("signed-token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleCustomer, output.User.Role)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Empty(t, output.User.PasswordHash, "credential hash must never leave the usecase layer")
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "tester",
		Email:    "taken@example.com",
		Password: "Password123!",
		FullName: "Test User",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.User{ID: 7, Email: input.Email}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUserAlreadyExists.ErrorCode(), appErr.ErrorCode())
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "tester",
		Email:    "test@example.com",
		Password: "short",
		FullName: "Test User",
	}

	fx.hasher.EXPECT().
		ValidatePasswordStrength(input.Password).
		Return(domainerrors.ErrPasswordStrength)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{
		ID:           9,
		Email:        "test@example.com",
		PasswordHash: "stored-hash",
		Role:         entity.RoleAdmin,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
	fx.hasher.EXPECT().Check("Password123!", "stored-hash").Return(true)
	fx.tokenService.EXPECT().GenerateToken(int64(9), entity.RoleAdmin).Return("signed-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    stored.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Empty(t, output.User.PasswordHash)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{ID: 9, Email: "test@example.com", PasswordHash: "stored-hash"}

	fx.userRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
	fx.hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    stored.Email,
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	// Unknown email and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GetProfile_StripsHash(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{ID: 3, Email: "test@example.com", PasswordHash: "stored-hash"}

	fx.userRepo.EXPECT().FindByID(ctx, int64(3)).Return(stored, nil)

	user, err := fx.service.GetProfile(ctx, 3)

	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, "stored-hash", stored.PasswordHash, "sanitizing must not mutate the stored entity")
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.UpdateProfileInput{
		Username: "renamed",
		FullName: "Renamed User",
		Address:  "2 New Street",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, int64(3)).
				Return(&entity.User{ID: 3, Username: "old", FullName: "Old"}, nil)

			mockUserRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(user *entity.User) bool {
					return user.Username == "renamed" && user.FullName == "Renamed User"
				})).
				Return(nil)

			return fn(mockFactory)
		})

	user, err := fx.service.UpdateProfile(ctx, 3, input)

	require.NoError(t, err)
	assert.Equal(t, "renamed", user.Username)
	assert.Equal(t, "2 New Street", user.Address)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetUser(ctx, 404)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_DeleteUser_RepoFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		Delete(ctx, int64(5)).
		Return(errors.New("connection reset"))

	err := fx.service.DeleteUser(ctx, 5)

	require.Error(t, err)

	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr), "infrastructure failures must not map to a client-facing code")
}
