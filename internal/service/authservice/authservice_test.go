package authservice

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/kboat10/babs10/internal/domain"
	"github.com/kboat10/babs10/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService, time.Hour)
	defer ctrl.Finish()
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, pinHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		email         string
		pin           string
		prepareMock   func()
		expectedEmail string
		expectedError error
	}{
		{
			name:  "Successful registration",
			email: " Ama@Example.com ",
			pin:   "1234",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "ama@example.com").Return(nil, nil)
				pinHasher.EXPECT().HashPin("1234").Return("hashedpin", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					assert.NotEmpty(t, user.ID)
					assert.Equal(t, "hashedpin", user.PinHash)
					return user, nil
				})
			},
			expectedEmail: "ama@example.com",
		},
		{
			name:  "User already exists",
			email: "ama@example.com",
			pin:   "1234",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "ama@example.com").Return(&domain.User{Email: "ama@example.com"}, nil)
			},
			expectedError: ErrUserAlreadyExists,
		},
		{
			name:  "Error finding user",
			email: "ama@example.com",
			pin:   "1234",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "ama@example.com").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:  "Error hashing pin",
			email: "ama@example.com",
			pin:   "1234",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "ama@example.com").Return(nil, nil)
				pinHasher.EXPECT().HashPin("1234").Return("", errors.New("hashing error"))
			},
			expectedError: errors.New("hashing error"),
		},
		{
			name:  "Error creating user",
			email: "ama@example.com",
			pin:   "1234",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "ama@example.com").Return(nil, nil)
				pinHasher.EXPECT().HashPin("1234").Return("hashedpin", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, errors.New("creation failed"))
			},
			expectedError: errors.New("creation failed"),
		},
		{
			name:  "Email taken between lookup and insert",
			email: "ama@example.com",
			pin:   "1234",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "ama@example.com").Return(nil, nil)
				pinHasher.EXPECT().HashPin("1234").Return("hashedpin", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).
					Return(nil, fmt.Errorf("ama@example.com: %w", domain.ErrDuplicateEmail))
			},
			expectedError: ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.email, tt.pin)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedEmail, user.Email)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, pinHasher, _ := NewMock(t)
	stored := &domain.User{
		ID:      "user-1",
		Email:   "ama@example.com",
		PinHash: "hashedpin",
	}

	tests := []struct {
		name          string
		email         string
		pin           string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:  "Successful authentication",
			email: "AMA@example.com",
			pin:   "1234",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "ama@example.com").Return(stored, nil)
				pinHasher.EXPECT().ComparePin("hashedpin", "1234").Return(true)
			},
			expectedUser: stored,
		},
		{
			name:  "Invalid credentials - user not found",
			email: "ama@example.com",
			pin:   "1234",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "ama@example.com").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:  "Invalid credentials - repository error",
			email: "ama@example.com",
			pin:   "1234",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "ama@example.com").Return(nil, errors.New("database error"))
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:  "Invalid credentials - incorrect pin",
			email: "ama@example.com",
			pin:   "0000",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "ama@example.com").Return(stored, nil)
				pinHasher.EXPECT().ComparePin("hashedpin", "0000").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), tt.email, tt.pin)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	tests := []struct {
		name          string
		userID        string
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name:   "Successful token generation",
			userID: "user-1",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT("user-1", gomock.Any()).DoAndReturn(func(_ string, exp time.Time) (string, error) {
					assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)
					return "generated-token", nil
				})
			},
			expectedToken: "generated-token",
		},
		{
			name:   "Error generating token",
			userID: "user-1",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT("user-1", gomock.Any()).Return("", errors.New("can't generate token"))
			},
			expectedError: errors.New("can't generate token"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			token, err := service.GenerateToken(tt.userID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

func TestGetUserByEmail(t *testing.T) {
	service, userRepo, _, _ := NewMock(t)

	userRepo.EXPECT().FindByEmail(gomock.Any(), "ama@example.com").Return(&domain.User{ID: "user-1"}, nil)
	user, err := service.GetUserByEmail(context.Background(), "ama@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)

	userRepo.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)
	_, err = service.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListUsers(t *testing.T) {
	service, userRepo, _, _ := NewMock(t)

	userRepo.EXPECT().List(gomock.Any()).Return([]domain.User{{ID: "user-1"}, {ID: "user-2"}}, nil)
	users, err := service.ListUsers(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 2)

	userRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("database error"))
	_, err = service.ListUsers(context.Background())
	assert.Error(t, err)
}

func TestNewDefaultsTokenTTL(t *testing.T) {
	assert.Equal(t, defaultTokenTTL, New(nil, nil, nil, 0).tokenTTL)
}
