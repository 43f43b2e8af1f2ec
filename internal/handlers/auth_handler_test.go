package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestaoweb/portal-documentos/internal/config"
	"github.com/gestaoweb/portal-documentos/internal/domain/portal/mocks"
	"github.com/gestaoweb/portal-documentos/internal/models"
	"github.com/gestaoweb/portal-documentos/internal/session"
	ucAuth "github.com/gestaoweb/portal-documentos/internal/usecase/auth"
)

type memStore struct {
	sessions map[string]*session.Data
}

func newMemStore() *memStore {
	return &memStore{sessions: map[string]*session.Data{}}
}

func (s *memStore) Load(_ context.Context, token string) (*session.Data, error) {
	data, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	copied := *data
	return &copied, nil
}

func (s *memStore) Save(_ context.Context, token string, data *session.Data) error {
	copied := *data
	s.sessions[token] = &copied
	return nil
}

func (s *memStore) Delete(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

func newSessionManager(store session.Store) *session.Manager {
	return session.NewManager(store, &config.Config{
		SessionCookie: "portal_sessao",
		SessionTTL:    30 * time.Minute,
	})
}

func authRouter(repo *mocks.MockRepository, store *memStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	sessions := newSessionManager(store)
	h := NewAuthHandler(ucAuth.NewAdminLogin(repo), ucAuth.NewClienteLogin(repo), sessions)

	r := gin.New()
	r.Use(sessions.Middleware())
	r.GET("/login/admin/", h.AdminLoginPage)
	r.POST("/login/admin/", h.AdminLogin)
	r.POST("/login/cliente/", h.ClienteLogin)
	r.GET("/logout/admin/", h.AdminLogout)
	r.GET("/logout/cliente/", h.ClienteLogout)
	return r
}

func postForm(r *gin.Engine, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Cookie", "portal_sessao="+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminLogin_CredenciaisInvalidasRespondem401Generico(t *testing.T) {
	repo := new(mocks.MockRepository)
	repo.On("FindAdministratorsByEmail", mock.Anything, "ninguem@empresa.com.br").
		Return([]models.Administrator{}, nil)

	store := newMemStore()
	r := authRouter(repo, store)

	w := postForm(r, "/login/admin/", "email=ninguem@empresa.com.br&password=senha", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_admin_credentials")
	assert.Contains(t, w.Body.String(), "Credenciais de administrador inválidas.")
	// nenhuma sessão autenticada foi gravada
	for _, data := range store.sessions {
		assert.Equal(t, uint(0), data.AdminID)
	}
}

func TestAdminLogin_SucessoCriaSessaoERedireciona(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := new(mocks.MockRepository)
	repo.On("FindAdministratorsByEmail", mock.Anything, "maria@empresa.com.br").
		Return([]models.Administrator{{
			ID:           3,
			Username:     "maria",
			Email:        "maria@empresa.com.br",
			PasswordHash: string(hash),
			IsStaff:      true,
		}}, nil)

	store := newMemStore()
	r := authRouter(repo, store)

	w := postForm(r, "/login/admin/", "email=maria@empresa.com.br&password=senha-forte", "")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/dashboard/", w.Header().Get("Location"))

	require.Len(t, store.sessions, 1)
	for _, data := range store.sessions {
		assert.Equal(t, uint(3), data.AdminID)
	}

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "portal_sessao", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}

func TestClienteLogin_SenhaErradaResponde401Generico(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("portal123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := new(mocks.MockRepository)
	repo.On("GetClienteByCNPJ", mock.Anything, "12.345.678/0001-90").
		Return(&models.Cliente{ID: 9, CNPJ: "12.345.678/0001-90", SenhaHash: string(hash)}, nil)

	r := authRouter(repo, newMemStore())

	w := postForm(r, "/login/cliente/", "cnpj=12.345.678/0001-90&senha=errada", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "CNPJ ou senha inválidos.")
}

func TestClienteLogin_SucessoRedirecionaParaDashboard(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("portal123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := new(mocks.MockRepository)
	repo.On("GetClienteByCNPJ", mock.Anything, "12.345.678/0001-90").
		Return(&models.Cliente{ID: 9, CNPJ: "12.345.678/0001-90", SenhaHash: string(hash)}, nil)

	store := newMemStore()
	r := authRouter(repo, store)

	w := postForm(r, "/login/cliente/", "cnpj=12.345.678/0001-90&senha=portal123", "")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/cliente/dashboard/", w.Header().Get("Location"))
	require.Len(t, store.sessions, 1)
	for _, data := range store.sessions {
		assert.Equal(t, uint(9), data.ClienteID)
	}
}

func TestAdminLoginPage_JaAutenticadoRedireciona(t *testing.T) {
	store := newMemStore()
	store.sessions["tok-1"] = &session.Data{AdminID: 3}

	r := authRouter(new(mocks.MockRepository), store)

	req := httptest.NewRequest("GET", "/login/admin/", nil)
	req.Header.Set("Cookie", "portal_sessao=tok-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/dashboard/", w.Header().Get("Location"))
}

// Logout de cliente não derruba a identidade de administrador no mesmo
// navegador.
func TestClienteLogout_PreservaAdmin(t *testing.T) {
	store := newMemStore()
	store.sessions["tok-1"] = &session.Data{AdminID: 3, ClienteID: 9}

	r := authRouter(new(mocks.MockRepository), store)

	req := httptest.NewRequest("GET", "/logout/cliente/", nil)
	req.Header.Set("Cookie", "portal_sessao=tok-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)

	data := store.sessions["tok-1"]
	require.NotNil(t, data)
	assert.Equal(t, uint(3), data.AdminID)
	assert.Equal(t, uint(0), data.ClienteID)
}
