package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Boutique-api/internal/application/dto"
	"github.com/jhoicas/Boutique-api/internal/application/usecase"
	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (usuarios y actividad)
// ──────────────────────────────────────────────────────────────────────────────

type fakeAdminUserRepo struct {
	users map[string]*entity.User // key: userID
	roles map[string]string       // ausencia = "user"
}

func newFakeAdminUserRepo() *fakeAdminUserRepo {
	return &fakeAdminUserRepo{users: map[string]*entity.User{}, roles: map[string]string{}}
}

func (f *fakeAdminUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminUserRepo) FindByID(id string) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeAdminUserRepo) RoleOf(userID string) (string, error) {
	if r, ok := f.roles[userID]; ok {
		return r, nil
	}
	return entity.RoleUser, nil
}

func (f *fakeAdminUserRepo) SetRole(userID, role string) error {
	if role == entity.RoleAdmin {
		f.roles[userID] = role
	} else {
		delete(f.roles, userID)
	}
	return nil
}

func (f *fakeAdminUserRepo) GetProfile(userID string) (*entity.Profile, error) {
	return nil, nil
}

func (f *fakeAdminUserRepo) ListWithRoles() ([]*entity.UserWithRole, error) {
	var out []*entity.UserWithRole
	for _, u := range f.users {
		role, _ := f.RoleOf(u.ID)
		out = append(out, &entity.UserWithRole{
			ID:        u.ID,
			Email:     u.Email,
			Role:      role,
			CreatedAt: u.CreatedAt,
		})
	}
	return out, nil
}

type fakeActivityRepo struct {
	records []*entity.ActivityRecord
	users   int
	today   int
}

func (f *fakeActivityRepo) Insert(r *entity.ActivityRecord) error {
	f.records = append(f.records, r)
	return nil
}

func (f *fakeActivityRepo) CountByType(activityType string) (int, error) {
	n := 0
	for _, r := range f.records {
		if r.ActivityType == activityType {
			n++
		}
	}
	return n, nil
}

func (f *fakeActivityRepo) Recent(limit int) ([]*entity.ActivityRecord, error) {
	if len(f.records) <= limit {
		return f.records, nil
	}
	return f.records[len(f.records)-limit:], nil
}

func (f *fakeActivityRepo) CountUsers() (int, error) { return f.users, nil }

func (f *fakeActivityRepo) CountUsersCreatedToday() (int, error) { return f.today, nil }

// ──────────────────────────────────────────────────────────────────────────────
// SetRole
// ──────────────────────────────────────────────────────────────────────────────

func TestSetRole_PromocionYRevocacion(t *testing.T) {
	repo := newFakeAdminUserRepo()
	repo.users["u1"] = &entity.User{ID: "u1", Email: "ana@example.com"}
	uc := usecase.NewAdminUseCase(repo, &fakeActivityRepo{}, &fakeActivityRepo{})

	require.NoError(t, uc.SetRole("u1", dto.SetRoleRequest{Role: entity.RoleAdmin}))
	role, _ := repo.RoleOf("u1")
	assert.Equal(t, entity.RoleAdmin, role)

	// Degradar a user elimina la fila: la ausencia ES el rol user
	require.NoError(t, uc.SetRole("u1", dto.SetRoleRequest{Role: entity.RoleUser}))
	role, _ = repo.RoleOf("u1")
	assert.Equal(t, entity.RoleUser, role)
	_, tieneFile := repo.roles["u1"]
	assert.False(t, tieneFile, "el rol user no deja fila")
}

func TestSetRole_RolDesconocido_RetornaValidacion(t *testing.T) {
	repo := newFakeAdminUserRepo()
	repo.users["u1"] = &entity.User{ID: "u1"}
	uc := usecase.NewAdminUseCase(repo, &fakeActivityRepo{}, &fakeActivityRepo{})

	err := uc.SetRole("u1", dto.SetRoleRequest{Role: "superadmin"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetRole_UsuarioInexistente_RetornaNotFound(t *testing.T) {
	uc := usecase.NewAdminUseCase(newFakeAdminUserRepo(), &fakeActivityRepo{}, &fakeActivityRepo{})
	err := uc.SetRole("no-existe", dto.SetRoleRequest{Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Analytics
// ──────────────────────────────────────────────────────────────────────────────

func TestAnalytics_AgregaContadoresYActividad(t *testing.T) {
	activity := &fakeActivityRepo{users: 42, today: 3}
	for i := 0; i < 5; i++ {
		require.NoError(t, activity.Insert(&entity.ActivityRecord{
			ID:           "a" + string(rune('0'+i)),
			ActivityType: entity.ActivityUserLogin,
			CreatedAt:    time.Now(),
		}))
	}
	require.NoError(t, activity.Insert(&entity.ActivityRecord{
		ID:           "a9",
		ActivityType: entity.ActivityUserRegistered,
		CreatedAt:    time.Now(),
	}))

	uc := usecase.NewAdminUseCase(newFakeAdminUserRepo(), activity, activity)
	out, err := uc.Analytics()
	require.NoError(t, err)

	assert.Equal(t, 42, out.TotalUsers)
	assert.Equal(t, 3, out.NewUsersToday)
	assert.Equal(t, 5, out.TotalLogins, "solo cuenta user_login, no registros")
	assert.Len(t, out.RecentActivity, 6)
}

func TestListUsers_IncluyeRolEfectivo(t *testing.T) {
	repo := newFakeAdminUserRepo()
	repo.users["u1"] = &entity.User{ID: "u1", Email: "ana@example.com"}
	repo.roles["u1"] = entity.RoleAdmin
	uc := usecase.NewAdminUseCase(repo, &fakeActivityRepo{}, &fakeActivityRepo{})

	out, err := uc.ListUsers()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, entity.RoleAdmin, out[0].Role)
}
