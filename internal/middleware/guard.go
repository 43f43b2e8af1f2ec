package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/gestaoweb/portal-documentos/internal/domain/portal"
	"github.com/gestaoweb/portal-documentos/internal/httperr"
	"github.com/gestaoweb/portal-documentos/internal/models"
	"github.com/gestaoweb/portal-documentos/internal/session"
)

const (
	ContextAdmin     = "admin"
	ContextAdminID   = "adminID"
	ContextCliente   = "cliente"
	ContextClienteID = "clienteID"

	AdminLoginPath   = "/login/admin/"
	ClienteLoginPath = "/login/cliente/"
)

// RequireAdministrador só deixa passar uma sessão com identidade de
// administrador cuja conta ainda existe e tem a flag de staff. Conta
// apagada ou sem privilégio volta para o login; erro de infraestrutura
// responde 500 sem tocar na sessão.
func RequireAdministrador(sessions *session.Manager, repo domain.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := sessions.Current(c)
		if data.AdminID == 0 {
			redirectTo(c, AdminLoginPath)
			return
		}

		admin, err := repo.GetAdministratorByID(c.Request.Context(), data.AdminID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Conta sumiu: derruba a identidade.
				data.AdminID = 0
				_ = sessions.Save(c)
				redirectTo(c, AdminLoginPath)
				return
			}
			// Falha de infra não invalida uma sessão legítima.
			httperr.Internal(c, "failed_to_load_session", "Erro ao carregar a sessão.")
			c.Abort()
			return
		}

		if !admin.IsStaff {
			// Perdeu o privilégio: derruba a identidade.
			data.AdminID = 0
			_ = sessions.Save(c)
			redirectTo(c, AdminLoginPath)
			return
		}

		c.Set(ContextAdminID, admin.ID)
		c.Set(ContextAdmin, admin)

		c.Next()
	}
}

// RequireCliente exige um slot de cliente que resolva para um registro
// vivo. Slot apontando para cliente apagado é removido da sessão na hora
// (auto-correção idempotente) antes do redirect para o login.
func RequireCliente(sessions *session.Manager, repo domain.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := sessions.Current(c)
		if data.ClienteID == 0 {
			sessions.Flash(c, session.FlashError,
				"Acesso não autorizado. Por favor, faça o login.")
			redirectTo(c, ClienteLoginPath)
			return
		}

		cliente, err := repo.GetClienteByID(c.Request.Context(), data.ClienteID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				data.ClienteID = 0
				_ = sessions.Save(c)
				sessions.Flash(c, session.FlashError,
					"Sua sessão era inválida. Por favor, faça o login novamente.")
				redirectTo(c, ClienteLoginPath)
				return
			}
			// Falha de infra não invalida uma sessão legítima.
			httperr.Internal(c, "failed_to_load_session", "Erro ao carregar a sessão.")
			c.Abort()
			return
		}

		c.Set(ContextClienteID, cliente.ID)
		c.Set(ContextCliente, cliente)

		c.Next()
	}
}

// CurrentAdmin devolve o administrador autenticado colocado no contexto
// pelo guard.
func CurrentAdmin(c *gin.Context) *models.Administrator {
	if v, ok := c.Get(ContextAdmin); ok {
		if admin, ok := v.(*models.Administrator); ok {
			return admin
		}
	}
	return nil
}

func CurrentCliente(c *gin.Context) *models.Cliente {
	if v, ok := c.Get(ContextCliente); ok {
		if cliente, ok := v.(*models.Cliente); ok {
			return cliente
		}
	}
	return nil
}

func redirectTo(c *gin.Context, path string) {
	c.Redirect(http.StatusSeeOther, path)
	c.Abort()
}
