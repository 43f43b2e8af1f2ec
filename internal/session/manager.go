package session

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gestaoweb/portal-documentos/internal/config"
)

const (
	ctxKeyData  = "sessionData"
	ctxKeyToken = "sessionToken"

	FlashSuccess = "success"
	FlashError   = "error"
)

// Manager amarra o Store ao cookie do navegador. Sessões vazias não são
// persistidas; o token só vai para o Redis quando algo é escrito nele.
type Manager struct {
	store      Store
	cookieName string
	ttl        time.Duration
	secure     bool
}

func NewManager(store Store, cfg *config.Config) *Manager {
	return &Manager{
		store:      store,
		cookieName: cfg.SessionCookie,
		ttl:        cfg.SessionTTL,
		secure:     cfg.CookieSecure,
	}
}

// Middleware carrega a sessão do cookie (ou inicia uma vazia) antes de
// qualquer handler.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.cookieName)
		if err == nil && token != "" {
			data, loadErr := m.store.Load(c.Request.Context(), token)
			if loadErr == nil && data != nil {
				c.Set(ctxKeyToken, token)
				c.Set(ctxKeyData, data)
				c.Next()
				return
			}
		}

		c.Set(ctxKeyToken, uuid.NewString())
		c.Set(ctxKeyData, &Data{})
		c.Next()
	}
}

func (m *Manager) Current(c *gin.Context) *Data {
	if v, ok := c.Get(ctxKeyData); ok {
		if data, ok := v.(*Data); ok {
			return data
		}
	}

	data := &Data{}
	c.Set(ctxKeyToken, uuid.NewString())
	c.Set(ctxKeyData, data)
	return data
}

func (m *Manager) token(c *gin.Context) string {
	if v, ok := c.Get(ctxKeyToken); ok {
		if t, ok := v.(string); ok {
			return t
		}
	}
	t := uuid.NewString()
	c.Set(ctxKeyToken, t)
	return t
}

// Save persiste o estado atual e renova o cookie.
func (m *Manager) Save(c *gin.Context) error {
	token := m.token(c)
	if err := m.store.Save(c.Request.Context(), token, m.Current(c)); err != nil {
		return err
	}
	m.setCookie(c, token)
	return nil
}

// rotate descarta o token atual e emite um novo com o mesmo estado.
// Evita fixação de sessão em toda troca de identidade.
func (m *Manager) rotate(c *gin.Context) error {
	old := m.token(c)
	_ = m.store.Delete(c.Request.Context(), old)

	token := uuid.NewString()
	c.Set(ctxKeyToken, token)
	return m.Save(c)
}

// --------------------------------------------------
// Identidades
// --------------------------------------------------

func (m *Manager) LoginAdmin(c *gin.Context, adminID uint) error {
	m.Current(c).AdminID = adminID
	return m.rotate(c)
}

// LogoutAdmin invalida a identidade do administrador e, por limpeza,
// também descarta qualquer slot de cliente remanescente.
func (m *Manager) LogoutAdmin(c *gin.Context) error {
	data := m.Current(c)
	data.AdminID = 0
	data.ClienteID = 0
	return m.rotate(c)
}

func (m *Manager) LoginCliente(c *gin.Context, clienteID uint) error {
	m.Current(c).ClienteID = clienteID
	return m.rotate(c)
}

// LogoutCliente limpa apenas o slot do cliente; uma identidade de
// administrador no mesmo navegador continua válida.
func (m *Manager) LogoutCliente(c *gin.Context) error {
	m.Current(c).ClienteID = 0
	return m.Save(c)
}

// --------------------------------------------------
// Flash messages
// --------------------------------------------------

func (m *Manager) Flash(c *gin.Context, level, message string) {
	m.Current(c).AddFlash(level, message)
	if err := m.Save(c); err != nil {
		// flash perdida não pode derrubar o request
		log.Printf("session: flash not persisted: %v", err)
	}
}

// PopFlashes consome as mensagens pendentes. A limpeza é persistida na
// hora para que um retry não as exiba de novo.
func (m *Manager) PopFlashes(c *gin.Context) []Flash {
	data := m.Current(c)
	if len(data.Flashes) == 0 {
		return nil
	}
	out := data.PopFlashes()
	_ = m.Save(c)
	return out
}

func (m *Manager) setCookie(c *gin.Context, token string) {
	c.SetCookie(m.cookieName, token, int(m.ttl.Seconds()), "/", "", m.secure, true)
}
