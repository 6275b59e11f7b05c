package service_test

import (
	"context"
	"testing"

	"github.com/jrmmllrs/CoffeeShop-backend/internal/dto"
	"github.com/jrmmllrs/CoffeeShop-backend/internal/model"
	"github.com/jrmmllrs/CoffeeShop-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func seedUser(t *testing.T, repo *stubUserRepo, name, username, password, role string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.User{
		ID:           uuid.New(),
		Name:         name,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	}
	repo.users[username] = u
	return u
}

func TestCreateUser_DefaultsToCashier(t *testing.T) {
	repo := newStubUserRepo()
	svc := service.NewUserService(repo)

	resp, err := svc.Create(context.Background(), dto.CreateUserRequest{
		Name:     "New Barista",
		Username: "barista1",
		Password: "secret1234",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleCashier, resp.Role)
	assert.NotEmpty(t, resp.ID)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "First", "taken", "pass1234", model.RoleCashier)
	svc := service.NewUserService(repo)

	_, err := svc.Create(context.Background(), dto.CreateUserRequest{
		Name:     "Second",
		Username: "taken",
		Password: "pass1234",
	})
	require.ErrorIs(t, err, service.ErrConflict)
}

func TestUpdateUser_RoleAndPassword(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "Promotable", "promo", "oldpass123", model.RoleCashier)
	svc := service.NewUserService(repo)

	resp, err := svc.Update(context.Background(), u.ID, dto.UpdateUserRequest{
		Name:     "Promotable",
		Role:     model.RoleAdmin,
		Password: "newpass123",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, resp.Role)

	stored := repo.users["promo"]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newpass123")))
}

func TestUpdateUser_KeepsPasswordWhenOmitted(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "Stable", "stable", "keepme123", model.RoleCashier)
	oldHash := u.PasswordHash
	svc := service.NewUserService(repo)

	_, err := svc.Update(context.Background(), u.ID, dto.UpdateUserRequest{Name: "Stable Renamed"})
	require.NoError(t, err)
	assert.Equal(t, oldHash, repo.users["stable"].PasswordHash)
	assert.Equal(t, "Stable Renamed", repo.users["stable"].Name)
}

func TestDeleteUser_SelfDeleteRejected(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "Admin", "admin", "admin1234", model.RoleAdmin)
	svc := service.NewUserService(repo)

	err := svc.Delete(context.Background(), u.ID, u.ID)
	require.ErrorIs(t, err, service.ErrValidation)
	assert.Contains(t, repo.users, "admin")
}

func TestDeleteUser_Success(t *testing.T) {
	repo := newStubUserRepo()
	actor := seedUser(t, repo, "Admin", "admin", "admin1234", model.RoleAdmin)
	victim := seedUser(t, repo, "Leaving", "leaving", "pass1234", model.RoleCashier)
	svc := service.NewUserService(repo)

	err := svc.Delete(context.Background(), actor.ID, victim.ID)
	require.NoError(t, err)
	assert.NotContains(t, repo.users, "leaving")
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	actor := seedUser(t, repo, "Admin", "admin", "admin1234", model.RoleAdmin)
	svc := service.NewUserService(repo)

	err := svc.Delete(context.Background(), actor.ID, uuid.New())
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestListCashiers_FiltersAdmins(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "Admin", "admin", "admin1234", model.RoleAdmin)
	seedUser(t, repo, "Cashier A", "casha", "pass1234", model.RoleCashier)
	seedUser(t, repo, "Cashier B", "cashb", "pass1234", model.RoleCashier)
	svc := service.NewUserService(repo)

	cashiers, err := svc.ListCashiers(context.Background())
	require.NoError(t, err)
	require.Len(t, cashiers, 2)
	for _, c := range cashiers {
		assert.Equal(t, model.RoleCashier, c.Role)
	}
}
