package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapeol/memorial-app/internal/domain"
)

// fakeHasher is a trivially reversible PasswordHasher for tests.
type fakeHasher struct{}

func (fakeHasher) GenerateSalt() (string, error) { return "salt", nil }
func (fakeHasher) Hash(salt, password string) (string, error) {
	return salt + ":" + password, nil
}
func (fakeHasher) Compare(hash, salt, password string) error {
	if hash != salt+":"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

type fakeTokenIssuer struct{}

func (fakeTokenIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	return "token-for-" + userID, nil
}

func newAuthFixture() (domain.AuthService, *fakeUserRepo, *fakeEmailService) {
	users := newFakeUserRepo()
	emails := &fakeEmailService{}
	svc := NewAuthService(users, fakeHasher{}, fakeTokenIssuer{}, emails, 24*time.Hour, 2*time.Second)
	return svc, users, emails
}

func TestAuthService_SignUp(t *testing.T) {
	ctx := context.Background()
	svc, _, emails := newAuthFixture()

	user, err := svc.SignUp(ctx, "June@Example.com", "password123", " June ")
	require.NoError(t, err)
	assert.Equal(t, "june@example.com", user.Email)
	assert.Equal(t, "June", user.Name)
	assert.NotEmpty(t, user.ID)

	require.Len(t, emails.welcomes, 1)
	assert.Equal(t, "june@example.com", emails.welcomes[0].Email)
}

func TestAuthService_SignUp_validation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthFixture()

	_, err := svc.SignUp(ctx, "not-an-email", "password123", "June")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.SignUp(ctx, "june@example.com", "short", "June")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAuthService_SignUp_duplicate_email(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthFixture()

	_, err := svc.SignUp(ctx, "june@example.com", "password123", "June")
	require.NoError(t, err)
	_, err = svc.SignUp(ctx, "june@example.com", "password456", "Impostor")
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestAuthService_SignUp_welcome_email_best_effort(t *testing.T) {
	ctx := context.Background()
	svc, _, emails := newAuthFixture()
	emails.err = fmt.Errorf("smtp down")

	// A failed welcome email must not fail the sign-up.
	user, err := svc.SignUp(ctx, "june@example.com", "password123", "June")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthFixture()

	user, err := svc.SignUp(ctx, "june@example.com", "password123", "June")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "june@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "token-for-"+user.ID, token)
}

func TestAuthService_Login_invalid_credentials(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthFixture()

	_, err := svc.SignUp(ctx, "june@example.com", "password123", "June")
	require.NoError(t, err)

	// Wrong password and unknown email read identically.
	_, err = svc.Login(ctx, "june@example.com", "wrong-password")
	require.Error(t, err)
	assert.EqualError(t, err, "invalid credentials")

	_, err = svc.Login(ctx, "nobody@example.com", "password123")
	require.Error(t, err)
	assert.EqualError(t, err, "invalid credentials")
}
