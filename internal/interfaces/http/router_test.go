package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Boutique-api/internal/application/auth"
	"github.com/jhoicas/Boutique-api/internal/application/usecase"
	"github.com/jhoicas/Boutique-api/internal/domain/entity"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Boutique-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: el router completo montado sobre repos de mapa
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users    map[string]*entity.User // key: email
	profiles map[string]*entity.Profile
	roles    map[string]string
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}, profiles: map[string]*entity.Profile{}, roles: map[string]string{}}
}

func (m *memUserRepo) FindByEmail(email string) (*entity.User, error) { return m.users[email], nil }

func (m *memUserRepo) FindByID(id string) (*entity.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) RoleOf(userID string) (string, error) {
	if r, ok := m.roles[userID]; ok {
		return r, nil
	}
	return entity.RoleUser, nil
}

func (m *memUserRepo) SetRole(userID, role string) error {
	if role == entity.RoleAdmin {
		m.roles[userID] = role
	} else {
		delete(m.roles, userID)
	}
	return nil
}

func (m *memUserRepo) GetProfile(userID string) (*entity.Profile, error) {
	return m.profiles[userID], nil
}

func (m *memUserRepo) ListWithRoles() ([]*entity.UserWithRole, error) {
	var out []*entity.UserWithRole
	for _, u := range m.users {
		role, _ := m.RoleOf(u.ID)
		out = append(out, &entity.UserWithRole{ID: u.ID, Email: u.Email, Role: role, CreatedAt: u.CreatedAt})
	}
	return out, nil
}

// CreateUser / CreateProfile / AssignRole: el mismo repo sirve de repo transaccional.
func (m *memUserRepo) CreateUser(user *entity.User) error {
	m.users[user.Email] = user
	return nil
}

func (m *memUserRepo) CreateProfile(profile *entity.Profile) error {
	m.profiles[profile.ID] = profile
	return nil
}

func (m *memUserRepo) AssignRole(userID, role string) error {
	if role == entity.RoleAdmin {
		m.roles[userID] = role
	}
	return nil
}

type memTxRunner struct{ repo *memUserRepo }

func (m *memTxRunner) RunRegistration(_ context.Context, fn func(repo repository.RegistrationRepository) error) error {
	return fn(m.repo)
}

type memProductRepo struct{ products map[string]*entity.Product }

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[string]*entity.Product{}}
}

func (m *memProductRepo) Create(p *entity.Product) error { m.products[p.ID] = p; return nil }

func (m *memProductRepo) GetByID(id string) (*entity.Product, error) { return m.products[id], nil }

func (m *memProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.products {
		if filter.Active && !p.IsActive {
			continue
		}
		if filter.Featured && !p.IsFeatured {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *memProductRepo) ListByIDs(ids []string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range ids {
		if p, ok := m.products[id]; ok && p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProductRepo) Update(p *entity.Product) error { m.products[p.ID] = p; return nil }

func (m *memProductRepo) Delete(id string) error { delete(m.products, id); return nil }

type memCategoryRepo struct{ categories map[string]*entity.Category }

func (m *memCategoryRepo) Create(c *entity.Category) error { m.categories[c.ID] = c; return nil }

func (m *memCategoryRepo) List() ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range m.categories {
		out = append(out, c)
	}
	return out, nil
}

func (m *memCategoryRepo) Update(c *entity.Category) error { m.categories[c.ID] = c; return nil }

func (m *memCategoryRepo) Delete(id string) error { delete(m.categories, id); return nil }

type memWishlistRepo struct{ saved map[string][]string }

func (m *memWishlistRepo) ListIDs(userID string) ([]string, error) { return m.saved[userID], nil }

func (m *memWishlistRepo) Add(userID, productID string) error {
	for _, id := range m.saved[userID] {
		if id == productID {
			return nil
		}
	}
	m.saved[userID] = append(m.saved[userID], productID)
	return nil
}

func (m *memWishlistRepo) Remove(userID, productID string) error {
	ids := m.saved[userID]
	for i, id := range ids {
		if id == productID {
			m.saved[userID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return nil
}

type memActivityRepo struct{ records []*entity.ActivityRecord }

func (m *memActivityRepo) Insert(r *entity.ActivityRecord) error {
	m.records = append(m.records, r)
	return nil
}

func (m *memActivityRepo) CountByType(activityType string) (int, error) {
	n := 0
	for _, r := range m.records {
		if r.ActivityType == activityType {
			n++
		}
	}
	return n, nil
}

func (m *memActivityRepo) Recent(limit int) ([]*entity.ActivityRecord, error) {
	if len(m.records) <= limit {
		return m.records, nil
	}
	return m.records[len(m.records)-limit:], nil
}

func (m *memActivityRepo) CountUsers() (int, error) { return len(m.records), nil }

func (m *memActivityRepo) CountUsersCreatedToday() (int, error) { return 0, nil }

// noopRecorder evita goroutines en los tests de handler.
type noopRecorder struct{}

func (noopRecorder) Record(string, string, map[string]string) {}

type testEnv struct {
	app      *fiber.App
	userRepo *memUserRepo
}

func buildRouterApp(t *testing.T) *testEnv {
	t.Helper()
	userRepo := newMemUserRepo()
	productRepo := newMemProductRepo()
	activityRepo := &memActivityRepo{}

	authUC := auth.NewAuthUseCase(userRepo, &memTxRunner{repo: userRepo}, noopRecorder{}, auth.JWTConfig{
		Secret:  testJWTSecret,
		ExpDays: 7,
		Issuer:  testIssuer,
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		ProductUC:  usecase.NewProductUseCase(productRepo),
		CategoryUC: usecase.NewCategoryUseCase(&memCategoryRepo{categories: map[string]*entity.Category{}}),
		WishlistUC: usecase.NewWishlistUseCase(&memWishlistRepo{saved: map[string][]string{}}, productRepo),
		AdminUC:    usecase.NewAdminUseCase(userRepo, activityRepo, activityRepo),
		JWTSecret:  testJWTSecret,
	})
	return &testEnv{app: app, userRepo: userRepo}
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo register → login → me
// ──────────────────────────────────────────────────────────────────────────────

func TestFlujo_RegisterLoginMe(t *testing.T) {
	env := buildRouterApp(t)

	resp := doJSON(t, env.app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":     "cliente@example.com",
		"password":  "secreta1",
		"full_name": "Cliente De Prueba",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, env.app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "cliente@example.com",
		"password": "secreta1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decodeBody(t, resp)
	token, _ := login["token"].(string)
	require.NotEmpty(t, token)

	resp = doJSON(t, env.app, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := decodeBody(t, resp)
	user, ok := me["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "cliente@example.com", user["email"])
	assert.Equal(t, "user", user["role"])
	assert.Equal(t, "Cliente De Prueba", user["full_name"])
}

func TestRegister_EmailDuplicado_Retorna409(t *testing.T) {
	env := buildRouterApp(t)
	payload := fiber.Map{"email": "cliente@example.com", "password": "secreta1"}

	resp := doJSON(t, env.app, http.MethodPost, "/api/auth/register", "", payload)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, env.app, http.MethodPost, "/api/auth/register", "", payload)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestLogin_CredencialesInvalidas_Retorna401(t *testing.T) {
	env := buildRouterApp(t)
	resp := doJSON(t, env.app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "nadie@example.com",
		"password": "loquesea",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Autorización del catálogo: lecturas públicas, mutaciones solo admin
// ──────────────────────────────────────────────────────────────────────────────

func registerAndLogin(t *testing.T, env *testEnv, email string, admin bool) string {
	t.Helper()
	resp := doJSON(t, env.app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":    email,
		"password": "secreta1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	if admin {
		user, err := env.userRepo.FindByEmail(email)
		require.NoError(t, err)
		require.NoError(t, env.userRepo.SetRole(user.ID, entity.RoleAdmin))
	}

	resp = doJSON(t, env.app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    email,
		"password": "secreta1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := decodeBody(t, resp)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func productPayload() fiber.Map {
	return fiber.Map{
		"name":      "Blusa de seda",
		"slug":      "blusa-de-seda",
		"category":  "blusas",
		"price":     "89.90",
		"stock":     5,
		"is_active": true,
	}
}

func TestProducts_ListadoEsPublico(t *testing.T) {
	env := buildRouterApp(t)
	resp := doJSON(t, env.app, http.MethodGet, "/api/products/", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "el listado no requiere token")
	resp.Body.Close()
}

func TestProducts_CrearSinToken_Retorna401(t *testing.T) {
	env := buildRouterApp(t)
	resp := doJSON(t, env.app, http.MethodPost, "/api/products/", "", productPayload())
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestProducts_CrearComoUser_Retorna403(t *testing.T) {
	env := buildRouterApp(t)
	token := registerAndLogin(t, env, "cliente@example.com", false)

	resp := doJSON(t, env.app, http.MethodPost, "/api/products/", token, productPayload())
	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un cliente autenticado no puede mutar el catálogo")
	resp.Body.Close()
}

func TestProducts_AdminCreaYLuegoAparece(t *testing.T) {
	env := buildRouterApp(t)
	token := registerAndLogin(t, env, "admin@example.com", true)

	resp := doJSON(t, env.app, http.MethodPost, "/api/products/", token, productPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id, _ := decodeBody(t, resp)["id"].(string)
	require.NotEmpty(t, id)

	resp = doJSON(t, env.app, http.MethodGet, "/api/products/"+id, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	product := decodeBody(t, resp)
	assert.Equal(t, "Blusa de seda", product["name"])
}

func TestProducts_GetInexistente_Retorna404(t *testing.T) {
	env := buildRouterApp(t)
	resp := doJSON(t, env.app, http.MethodGet, "/api/products/no-existe", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestProducts_LimitNoNumerico_Retorna400(t *testing.T) {
	env := buildRouterApp(t)
	resp := doJSON(t, env.app, http.MethodGet, "/api/products/?limit=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Wishlist: el dueño siempre sale del token
// ──────────────────────────────────────────────────────────────────────────────

func TestWishlist_FlujoAgregarListarQuitar(t *testing.T) {
	env := buildRouterApp(t)
	admin := registerAndLogin(t, env, "admin@example.com", true)
	cliente := registerAndLogin(t, env, "cliente@example.com", false)

	resp := doJSON(t, env.app, http.MethodPost, "/api/products/", admin, productPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	productID, _ := decodeBody(t, resp)["id"].(string)

	// Agregar dos veces el mismo producto: idempotente
	for i := 0; i < 2; i++ {
		resp = doJSON(t, env.app, http.MethodPost, "/api/wishlist/", cliente, fiber.Map{"product_id": productID})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp = doJSON(t, env.app, http.MethodGet, "/api/wishlist/", cliente, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ids []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ids))
	resp.Body.Close()
	assert.Equal(t, []string{productID}, ids)

	resp = doJSON(t, env.app, http.MethodDelete, "/api/wishlist/"+productID, cliente, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, env.app, http.MethodGet, "/api/wishlist/", cliente, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ids = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ids))
	resp.Body.Close()
	assert.Empty(t, ids)
}

func TestWishlist_SinToken_Retorna401(t *testing.T) {
	env := buildRouterApp(t)
	resp := doJSON(t, env.app, http.MethodGet, "/api/wishlist/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Back-office
// ──────────────────────────────────────────────────────────────────────────────

func TestAdmin_CambioDeRol(t *testing.T) {
	env := buildRouterApp(t)
	admin := registerAndLogin(t, env, "admin@example.com", true)
	registerAndLogin(t, env, "cliente@example.com", false)

	cliente, err := env.userRepo.FindByEmail("cliente@example.com")
	require.NoError(t, err)

	resp := doJSON(t, env.app, http.MethodPost, "/api/admin/users/"+cliente.ID+"/role", admin, fiber.Map{"role": "admin"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	role, _ := env.userRepo.RoleOf(cliente.ID)
	assert.Equal(t, entity.RoleAdmin, role)

	resp = doJSON(t, env.app, http.MethodPost, "/api/admin/users/"+cliente.ID+"/role", admin, fiber.Map{"role": "superadmin"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "rol fuera del conjunto permitido")
	resp.Body.Close()
}

func TestAdmin_RutasBloqueadasParaUser(t *testing.T) {
	env := buildRouterApp(t)
	cliente := registerAndLogin(t, env, "cliente@example.com", false)

	resp := doJSON(t, env.app, http.MethodGet, "/api/admin/users", cliente, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, env.app, http.MethodGet, "/api/admin/analytics", cliente, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}
