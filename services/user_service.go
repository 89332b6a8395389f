package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/models"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/repository"
	"go.uber.org/zap"
)

const (
	msgUserNotFound = "User not found."

	activityPasswordChanged = "password changed"
)

type UserService interface {
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, *ServiceError)
	GetUserProfile(ctx context.Context, id string) (*models.User, *ServiceError)
	UpdateUserProfile(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, *ServiceError)
	DeleteUser(ctx context.Context, id string) *ServiceError
	GetUserByEmail(ctx context.Context, email string) (*models.User, *ServiceError)
	GetUserActivity(ctx context.Context, id string) ([]models.Activity, *ServiceError)
	GetUserFavorites(ctx context.Context, id string) ([]models.Product, *ServiceError)
	AddFavorite(ctx context.Context, id, productID string) ([]models.Product, *ServiceError)
	RemoveFavorite(ctx context.Context, id, productID string) ([]models.Product, *ServiceError)
	ChangeUserPassword(ctx context.Context, id, newPassword string) *ServiceError
}

type userServiceImpl struct {
	users     repository.UserRepository
	products  repository.ProductRepository
	passwords *PasswordPolicy
	logger    *zap.Logger
}

func NewUserService(
	users repository.UserRepository,
	products repository.ProductRepository,
	passwords *PasswordPolicy,
	logger *zap.Logger,
) UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &userServiceImpl{users: users, products: products, passwords: passwords, logger: logger}
}

func (s *userServiceImpl) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, *ServiceError) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)
	if username == "" || email == "" || req.Password == "" || req.Profile == nil {
		return nil, Validation("Missing required fields.")
	}
	if err := s.passwords.Validate(req.Password); err != nil {
		return nil, Validation(err.Error())
	}

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, Validation("Email address is already in use.")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error("Failed to check email availability", zap.Error(err))
		return nil, Persistence("Failed to create user.", err)
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, Persistence("Failed to create user.", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hash,
		Profile:  *req.Profile,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, Validation("Username or email is already in use.")
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, Persistence("Failed to create user.", err)
	}

	s.logger.Info("User created", zap.String("user_id", user.ID.Hex()))
	return user, nil
}

func (s *userServiceImpl) GetUserProfile(ctx context.Context, id string) (*models.User, *ServiceError) {
	oid, svcErr := parseID(id, "user")
	if svcErr != nil {
		return nil, svcErr
	}
	user, err := s.users.FindByID(ctx, oid)
	return s.result(user, err, "Failed to fetch user.")
}

// UpdateUserProfile changes username, email or profile. Passwords only change
// through ChangeUserPassword.
func (s *userServiceImpl) UpdateUserProfile(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, *ServiceError) {
	oid, svcErr := parseID(id, "user")
	if svcErr != nil {
		return nil, svcErr
	}
	if req.Username != nil && strings.TrimSpace(*req.Username) == "" {
		return nil, Validation("Username must not be empty.")
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email == "" {
			return nil, Validation("Email must not be empty.")
		}
		req.Email = &email
	}

	user, err := s.users.Update(ctx, oid, req)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, Validation("Username or email is already in use.")
	}
	return s.result(user, err, "Failed to update user.")
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, id string) *ServiceError {
	oid, svcErr := parseID(id, "user")
	if svcErr != nil {
		return svcErr
	}
	err := s.users.Delete(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return NotFound(msgUserNotFound)
	}
	if err != nil {
		s.logger.Error("Failed to delete user", zap.String("user_id", id), zap.Error(err))
		return Persistence("Failed to delete user.", err)
	}
	return nil
}

func (s *userServiceImpl) GetUserByEmail(ctx context.Context, email string) (*models.User, *ServiceError) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	return s.result(user, err, "Failed to fetch user.")
}

func (s *userServiceImpl) GetUserActivity(ctx context.Context, id string) ([]models.Activity, *ServiceError) {
	user, svcErr := s.GetUserProfile(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}
	if user.ActivityLog == nil {
		return []models.Activity{}, nil
	}
	return user.ActivityLog, nil
}

func (s *userServiceImpl) GetUserFavorites(ctx context.Context, id string) ([]models.Product, *ServiceError) {
	user, svcErr := s.GetUserProfile(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}
	return s.resolveFavorites(ctx, user)
}

func (s *userServiceImpl) AddFavorite(ctx context.Context, id, productID string) ([]models.Product, *ServiceError) {
	oid, svcErr := parseID(id, "user")
	if svcErr != nil {
		return nil, svcErr
	}
	pid, svcErr := parseID(productID, "product")
	if svcErr != nil {
		return nil, svcErr
	}
	if _, err := s.products.FindByID(ctx, pid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound(msgProductNotFound)
		}
		s.logger.Error("Failed to load favorite product", zap.String("product_id", productID), zap.Error(err))
		return nil, Persistence("Failed to add favorite.", err)
	}

	user, err := s.users.AddFavorite(ctx, oid, pid)
	user, svcErr = s.result(user, err, "Failed to add favorite.")
	if svcErr != nil {
		return nil, svcErr
	}
	return s.resolveFavorites(ctx, user)
}

func (s *userServiceImpl) RemoveFavorite(ctx context.Context, id, productID string) ([]models.Product, *ServiceError) {
	oid, svcErr := parseID(id, "user")
	if svcErr != nil {
		return nil, svcErr
	}
	pid, svcErr := parseID(productID, "product")
	if svcErr != nil {
		return nil, svcErr
	}

	user, err := s.users.RemoveFavorite(ctx, oid, pid)
	user, svcErr = s.result(user, err, "Failed to remove favorite.")
	if svcErr != nil {
		return nil, svcErr
	}
	return s.resolveFavorites(ctx, user)
}

// ChangeUserPassword stores a bcrypt hash of newPassword and records the change
// in the activity log.
func (s *userServiceImpl) ChangeUserPassword(ctx context.Context, id, newPassword string) *ServiceError {
	oid, svcErr := parseID(id, "user")
	if svcErr != nil {
		return svcErr
	}
	if err := s.passwords.Validate(newPassword); err != nil {
		return Validation(err.Error())
	}

	hash, err := s.passwords.Hash(newPassword)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return Persistence("Failed to change password.", err)
	}

	activity := models.Activity{Action: activityPasswordChanged, Timestamp: time.Now().UTC()}
	err = s.users.UpdatePassword(ctx, oid, hash, activity)
	if errors.Is(err, repository.ErrNotFound) {
		return NotFound(msgUserNotFound)
	}
	if err != nil {
		s.logger.Error("Failed to change password", zap.String("user_id", id), zap.Error(err))
		return Persistence("Failed to change password.", err)
	}
	s.logger.Info("Password changed", zap.String("user_id", id))
	return nil
}

// resolveFavorites loads the favorite products in the user's order, skipping
// products that no longer exist.
func (s *userServiceImpl) resolveFavorites(ctx context.Context, user *models.User) ([]models.Product, *ServiceError) {
	products, err := s.products.FindByIDs(ctx, user.Favorites)
	if err != nil {
		s.logger.Error("Failed to resolve favorites", zap.String("user_id", user.ID.Hex()), zap.Error(err))
		return nil, Persistence("Failed to fetch favorites.", err)
	}
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID.Hex()] = p
	}
	favorites := make([]models.Product, 0, len(user.Favorites))
	for _, id := range user.Favorites {
		if p, ok := byID[id.Hex()]; ok {
			favorites = append(favorites, p)
		}
	}
	return favorites, nil
}

func (s *userServiceImpl) result(user *models.User, err error, failure string) (*models.User, *ServiceError) {
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFound(msgUserNotFound)
	}
	if err != nil {
		s.logger.Error(failure, zap.Error(err))
		return nil, Persistence(failure, err)
	}
	return user, nil
}
