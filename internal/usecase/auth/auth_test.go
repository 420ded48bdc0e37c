package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/customer-service/internal/domain/auth"
	"github.com/BruksfildServices01/customer-service/internal/infra/repository"
	"github.com/BruksfildServices01/customer-service/internal/models"
	"github.com/BruksfildServices01/customer-service/internal/security"
	"github.com/BruksfildServices01/customer-service/internal/testutil"
	ucAuth "github.com/BruksfildServices01/customer-service/internal/usecase/auth"
)

type fixture struct {
	customers *repository.CustomerGormRepository
	tokens    *repository.TokenGormStore
	signer    *security.TokenService
	issue     *ucAuth.IssueToken
	resolve   *ucAuth.ResolveCurrentUser
	revoke    *ucAuth.RevokeToken
	clock     time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	gdb := testutil.NewDB(t)
	f := &fixture{
		customers: repository.NewCustomerGormRepository(gdb, zap.NewNop()),
		tokens:    repository.NewTokenGormStore(gdb),
		clock:     time.Now(),
	}
	f.signer = security.NewTokenService("test-secret", 30*time.Minute).
		WithClock(func() time.Time { return f.clock })

	f.issue = ucAuth.NewIssueToken(f.customers, f.tokens, f.signer, nil, nil, zap.NewNop())
	f.resolve = ucAuth.NewResolveCurrentUser(f.customers, f.tokens, f.signer, zap.NewNop())
	f.revoke = ucAuth.NewRevokeToken(f.tokens, nil)
	return f
}

func (f *fixture) seed(t *testing.T, email, password string) *models.Customer {
	t.Helper()

	hashed, err := security.HashPassword(password)
	require.NoError(t, err)

	c := &models.Customer{
		Name:           testutil.Ptr("Cliente"),
		Email:          testutil.Ptr(email),
		HashedPassword: &hashed,
	}
	require.NoError(t, f.customers.Create(context.Background(), c))
	return c
}

func TestIssueThenResolve_ReturnsSameCustomer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seeded := f.seed(t, "admin@fiap.com.br", "valid_password")

	resp, err := f.issue.Execute(ctx, " Admin@FIAP.com.br", "valid_password")
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, seeded.ID, resp.CustomerID)
	assert.NotEmpty(t, resp.AccessToken)

	user, err := f.resolve.Execute(ctx, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, user.Customer.ID)
	assert.Equal(t, "admin@fiap.com.br", *user.Customer.Email)
	assert.NotEmpty(t, user.TokenID)
}

func TestIssue_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seed(t, "a@x.com", "right")

	anon, err := f.customers.CreateAnonymous(ctx)
	require.NoError(t, err)
	require.NotNil(t, anon)

	cases := map[string][2]string{
		"unknown user":   {"invalid@example.com", "whatever"},
		"wrong password": {"a@x.com", "wrong"},
		"empty username": {"", ""},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			resp, err := f.issue.Execute(ctx, in[0], in[1])
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
			assert.Nil(t, resp)
		})
	}
}

func TestResolve_ExpiredToken(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seed(t, "a@x.com", "pw")

	resp, err := f.issue.Execute(ctx, "a@x.com", "pw")
	require.NoError(t, err)

	f.clock = f.clock.Add(31 * time.Minute)

	_, err = f.resolve.Execute(ctx, resp.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResolve_RevokedToken(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seed(t, "a@x.com", "pw")

	resp, err := f.issue.Execute(ctx, "a@x.com", "pw")
	require.NoError(t, err)

	user, err := f.resolve.Execute(ctx, resp.AccessToken)
	require.NoError(t, err)
	require.NoError(t, f.revoke.Execute(ctx, user))

	_, err = f.resolve.Execute(ctx, resp.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResolve_DeletedCustomer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.seed(t, "a@x.com", "pw")

	resp, err := f.issue.Execute(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	require.NoError(t, f.customers.Delete(ctx, c.ID))

	_, err = f.resolve.Execute(ctx, resp.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResolve_RejectsForgedOrIncompleteTokens(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.seed(t, "a@x.com", "pw")

	noJTI, _, err := f.signer.Issue(jwt.MapClaims{"sub": "1"})
	require.NoError(t, err)

	noSub, _, err := f.signer.Issue(jwt.MapClaims{"jti": "x"})
	require.NoError(t, err)

	badSub, _, err := f.signer.Issue(jwt.MapClaims{"sub": "abc", "jti": "x"})
	require.NoError(t, err)

	unknownJTI, _, err := f.signer.Issue(jwt.MapClaims{"sub": "1", "jti": "never-saved"})
	require.NoError(t, err)

	otherKey, _, err := security.NewTokenService("other", time.Hour).Issue(jwt.MapClaims{"sub": "1", "jti": "x"})
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"empty":       "",
		"garbage":     "not.a.jwt",
		"no jti":      noJTI,
		"no sub":      noSub,
		"bad sub":     badSub,
		"unknown jti": unknownJTI,
		"other key":   otherKey,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := f.resolve.Execute(ctx, tok)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
	assert.Equal(t, uint(1), c.ID)
}
