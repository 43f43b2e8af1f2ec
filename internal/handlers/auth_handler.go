package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gestaoweb/portal-documentos/internal/httperr"
	"github.com/gestaoweb/portal-documentos/internal/middleware"
	"github.com/gestaoweb/portal-documentos/internal/session"
	ucAuth "github.com/gestaoweb/portal-documentos/internal/usecase/auth"
)

type AuthHandler struct {
	adminLogin   *ucAuth.AdminLogin
	clienteLogin *ucAuth.ClienteLogin
	sessions     *session.Manager
}

func NewAuthHandler(
	adminLogin *ucAuth.AdminLogin,
	clienteLogin *ucAuth.ClienteLogin,
	sessions *session.Manager,
) *AuthHandler {
	return &AuthHandler{
		adminLogin:   adminLogin,
		clienteLogin: clienteLogin,
		sessions:     sessions,
	}
}

// --------- Requests ---------

type AdminLoginRequest struct {
	Email string `form:"email" json:"email" binding:"required,email"`
	Senha string `form:"password" json:"password" binding:"required"`
}

type ClienteLoginRequest struct {
	CNPJ  string `form:"cnpj" json:"cnpj" binding:"required"`
	Senha string `form:"senha" json:"senha" binding:"required"`
}

// --------- Administrador ---------

func (h *AuthHandler) AdminLoginPage(c *gin.Context) {
	if h.sessions.Current(c).AdminID != 0 {
		c.Redirect(http.StatusSeeOther, "/admin/dashboard/")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title":    "Login do Administrador",
		"messages": h.sessions.PopFlashes(c),
	})
}

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	admin, err := h.adminLogin.Execute(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidAdminCredentials) {
			httperr.Unauthorized(c, httperr.CodeInvalidAdminCredentials,
				"Credenciais de administrador inválidas.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
		return
	}

	if err := h.sessions.LoginAdmin(c, admin.ID); err != nil {
		httperr.Internal(c, "session_error", "Não foi possível iniciar a sessão.")
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/dashboard/")
}

func (h *AuthHandler) AdminLogout(c *gin.Context) {
	if err := h.sessions.LogoutAdmin(c); err != nil {
		httperr.Internal(c, "session_error", "Não foi possível encerrar a sessão.")
		return
	}

	h.sessions.Flash(c, session.FlashSuccess, "Você saiu com segurança.")
	c.Redirect(http.StatusSeeOther, middleware.AdminLoginPath)
}

// --------- Cliente ---------

func (h *AuthHandler) ClienteLoginPage(c *gin.Context) {
	if h.sessions.Current(c).ClienteID != 0 {
		c.Redirect(http.StatusSeeOther, "/cliente/dashboard/")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title":    "Login do Cliente",
		"messages": h.sessions.PopFlashes(c),
	})
}

func (h *AuthHandler) ClienteLogin(c *gin.Context) {
	var req ClienteLoginRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	cliente, err := h.clienteLogin.Execute(c.Request.Context(), req.CNPJ, req.Senha)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidClientCredentials) {
			httperr.Unauthorized(c, httperr.CodeInvalidClientCredentials,
				"CNPJ ou senha inválidos.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
		return
	}

	if err := h.sessions.LoginCliente(c, cliente.ID); err != nil {
		httperr.Internal(c, "session_error", "Não foi possível iniciar a sessão.")
		return
	}

	c.Redirect(http.StatusSeeOther, "/cliente/dashboard/")
}

func (h *AuthHandler) ClienteLogout(c *gin.Context) {
	if err := h.sessions.LogoutCliente(c); err != nil {
		httperr.Internal(c, "session_error", "Não foi possível encerrar a sessão.")
		return
	}

	h.sessions.Flash(c, session.FlashSuccess, "Você saiu com segurança.")
	c.Redirect(http.StatusSeeOther, middleware.ClienteLoginPath)
}
