package service

import (
	"context"
	"errors"
	"strings"

	"github.com/litvinov-da/library/data"
	"github.com/litvinov-da/library/data/dto"
	"github.com/litvinov-da/library/internal/validator"
	"github.com/litvinov-da/library/repository"
)

type users interface {
	CreateUser(ctx context.Context, requestBody dto.CreateUserRequestBody) (*data.User, error)
	GetUser(ctx context.Context, userID int64) (*data.User, error)
	Authenticate(ctx context.Context, email string, password string) (*data.User, error)
	GetUserPermissions(ctx context.Context, userID int64) (data.Permissions, error)
	GrantPermissions(ctx context.Context, userID int64, codes []string) (data.Permissions, error)
	GetUserForToken(ctx context.Context, tokenScope string, tokenPlaintext string) (*data.User, error)
}

// CreateUser service creates an activated user, grants the requested
// permissions and sends a welcome email.
func (s *service) CreateUser(ctx context.Context, requestBody dto.CreateUserRequestBody) (*data.User, error) {
	user := &data.User{
		Name:      requestBody.Name,
		Email:     requestBody.Email,
		Activated: true,
	}
	err := user.Password.Set(requestBody.Password)
	if err != nil {
		return nil, err
	}
	v := validator.New()
	data.ValidateUser(v, user)
	data.ValidatePermissions(v, requestBody.Permissions)
	if !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	err = s.repo.CreateUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			return nil, duplicateValue("email", "a user with this email address already exists")
		default:
			return nil, err
		}
	}
	if len(requestBody.Permissions) > 0 {
		err = s.repo.AddPermissionsForUser(ctx, user.ID, requestBody.Permissions...)
		if err != nil {
			return nil, err
		}
	}
	// Send welcome email in a background goroutine to speed up response time
	s.background(func() {
		data := map[string]string{
			"userName": strings.Split(user.Name, " ")[0],
		}
		err := s.mailer.Send(user.Email, "user_welcome.tmpl", data)
		if err != nil {
			s.logger.PrintError(err, map[string]string{"email": user.Email})
		}
	})
	return user, nil
}

// GetUser service retrieves a user.
func (s *service) GetUser(ctx context.Context, userID int64) (*data.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return user, nil
}

// Authenticate service checks an email and password pair.
func (s *service) Authenticate(ctx context.Context, email string, password string) (*data.User, error) {
	v := validator.New()
	data.ValidateEmail(v, email)
	data.ValidatePasswordPlaintext(v, password)
	if !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrInvalidCredentials
		default:
			return nil, err
		}
	}
	match, err := user.Password.Matches(password)
	if err != nil {
		return nil, err
	}
	if !match || !user.Activated {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUserPermissions service retrieves the permission codes of a user.
func (s *service) GetUserPermissions(ctx context.Context, userID int64) (data.Permissions, error) {
	return s.repo.GetAllPermissionsForUser(ctx, userID)
}

// GrantPermissions service adds permission codes to a user and returns the full set.
func (s *service) GrantPermissions(ctx context.Context, userID int64, codes []string) (data.Permissions, error) {
	v := validator.New()
	v.Check(len(codes) > 0, "permissions", "must contain at least 1 code")
	if data.ValidatePermissions(v, codes); !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	err := s.repo.AddPermissionsForUser(ctx, userID, codes...)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidReference):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return s.repo.GetAllPermissionsForUser(ctx, userID)
}

// GetUserForToken retrieves the user associated with a token.
func (s *service) GetUserForToken(ctx context.Context, tokenScope string, tokenPlaintext string) (*data.User, error) {
	v := validator.New()
	if data.ValidateTokenPlaintext(v, tokenPlaintext); !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	user, err := s.repo.GetUserForToken(ctx, tokenScope, tokenPlaintext)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			v.AddError("token", "invalid or expired token")
			return nil, failedValidation(v.Errors)
		default:
			return nil, err
		}
	}
	return user, nil
}
