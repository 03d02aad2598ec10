package service

import (
	"context"
	"testing"

	"github.com/litvinov-da/library/data"
	"github.com/litvinov-da/library/data/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserSendsWelcomeMail(t *testing.T) {
	s := newTestService(t)
	user := mustUser(t, s, "Ann Librarian", "ann@example.com", data.PermissionMarkReturned)
	assert.True(t, user.Activated)
	require.Len(t, s.mailer.sent, 1)
	assert.Equal(t, sentMail{recipient: "ann@example.com", template: "user_welcome.tmpl"}, s.mailer.sent[0])

	permissions, err := s.GetUserPermissions(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, permissions.Include(data.PermissionMarkReturned))
	assert.False(t, permissions.Include(data.PermissionManageCatalog))
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	s := newTestService(t)
	mustUser(t, s, "Ann", "ann@example.com")
	_, err := s.CreateUser(context.Background(), dto.CreateUserRequestBody{Name: "Ann", Email: "ann@example.com", Password: "pa55word-long"})
	assert.ErrorIs(t, err, ErrDuplicateRecord)

	_, err = s.CreateUser(context.Background(), dto.CreateUserRequestBody{Name: "Bob", Email: "bob@example.com", Password: "pa55word-long", Permissions: []string{"root"}})
	assert.ErrorIs(t, err, ErrFailedValidation)
}

func TestGrantPermissions(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	user := mustUser(t, s, "Ann", "ann@example.com")

	permissions, err := s.GrantPermissions(ctx, user.ID, []string{data.PermissionManageCatalog})
	require.NoError(t, err)
	assert.Equal(t, data.Permissions{data.PermissionManageCatalog}, permissions)

	_, err = s.GrantPermissions(ctx, 999, []string{data.PermissionManageCatalog})
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = s.GrantPermissions(ctx, user.ID, nil)
	assert.ErrorIs(t, err, ErrFailedValidation)
}

func TestAuthenticationTokens(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	user := mustUser(t, s, "Ann", "ann@example.com")

	_, err := s.CreateAuthenticationToken(ctx, "ann@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.CreateAuthenticationToken(ctx, "nobody@example.com", "pa55word-long")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	token, err := s.CreateAuthenticationToken(ctx, "ann@example.com", "pa55word-long")
	require.NoError(t, err)
	found, err := s.GetUserForToken(ctx, data.ScopeAuthentication, token.Plaintext)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	require.NoError(t, s.DeleteAuthenticationToken(ctx, user.ID))
	_, err = s.GetUserForToken(ctx, data.ScopeAuthentication, token.Plaintext)
	assert.ErrorIs(t, err, ErrFailedValidation)
}

func TestAuthorDates(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	author, err := s.CreateAuthor(ctx, dto.AuthorRequestBody{
		FirstName:   ptr("Frank"),
		LastName:    ptr("Herbert"),
		DateOfBirth: ptr("1920-10-08"),
		DateOfDeath: ptr("1986-02-11"),
	})
	require.NoError(t, err)
	assert.Equal(t, "1920-10-08", author.DateOfBirth.String())

	updated, err := s.UpdateAuthor(ctx, author.ID, dto.AuthorRequestBody{DateOfDeath: ptr("")})
	require.NoError(t, err)
	assert.Nil(t, updated.DateOfDeath)

	_, err = s.UpdateAuthor(ctx, author.ID, dto.AuthorRequestBody{DateOfBirth: ptr("10/08/1920")})
	assert.ErrorIs(t, err, ErrFailedValidation)
}
