package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/gestaoweb/portal-documentos/internal/domain/portal"
	"github.com/gestaoweb/portal-documentos/internal/httperr"
	"github.com/gestaoweb/portal-documentos/internal/middleware"
	"github.com/gestaoweb/portal-documentos/internal/session"
	ucUsuario "github.com/gestaoweb/portal-documentos/internal/usecase/usuario"
)

type UsuarioHandler struct {
	repo     domain.Repository
	sessions *session.Manager
	createUC *ucUsuario.CreateAdministrator
	deleteUC *ucUsuario.DeleteAdministrator
}

func NewUsuarioHandler(
	repo domain.Repository,
	sessions *session.Manager,
	createUC *ucUsuario.CreateAdministrator,
	deleteUC *ucUsuario.DeleteAdministrator,
) *UsuarioHandler {
	return &UsuarioHandler{
		repo:     repo,
		sessions: sessions,
		createUC: createUC,
		deleteUC: deleteUC,
	}
}

// --------- Requests ---------

type UsuarioFormRequest struct {
	Username string `form:"username" json:"username"`
	Email    string `form:"email" json:"email"`
	Senha    string `form:"password" json:"password"`
}

// --------- Handlers ---------

func (h *UsuarioHandler) List(c *gin.Context) {
	admins, err := h.repo.ListAdministrators(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_administrators", "Erro ao listar administradores.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"usuarios": admins,
		"messages": h.sessions.PopFlashes(c),
	})
}

func (h *UsuarioHandler) NewForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":    "Novo Administrador",
		"messages": h.sessions.PopFlashes(c),
	})
}

func (h *UsuarioHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	var req UsuarioFormRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	admin, err := h.createUC.Execute(c.Request.Context(), adminID, ucUsuario.CreateAdministratorInput{
		Username: req.Username,
		Email:    req.Email,
		Senha:    req.Senha,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeUsernameRequired):
			httperr.ValidationError(c, map[string]string{"username": "Campo obrigatório."})
		case httperr.IsBusiness(err, httperr.CodeEmailRequired):
			httperr.ValidationError(c, map[string]string{"email": "Campo obrigatório."})
		case httperr.IsBusiness(err, httperr.CodeSenhaRequired):
			httperr.ValidationError(c, map[string]string{"password": "Campo obrigatório."})
		case httperr.IsBusiness(err, httperr.CodeUsernameAlreadyExists):
			httperr.ValidationError(c, map[string]string{"username": "Este nome de usuário já está em uso."})
		default:
			httperr.Internal(c, "failed_to_create_administrator", "Erro ao criar administrador.")
		}
		return
	}

	h.sessions.Flash(c, session.FlashSuccess,
		fmt.Sprintf("Administrador '%s' criado com sucesso!", admin.Username))
	c.Redirect(http.StatusSeeOther, "/admin/usuarios/")
}

func (h *UsuarioHandler) ConfirmDelete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	admin, err := h.repo.GetAdministratorByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeAdministratorNotFound, "Administrador não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_administrator", "Erro ao carregar administrador.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title":    "Confirmar Exclusão",
		"usuario":  admin,
		"messages": h.sessions.PopFlashes(c),
	})
}

func (h *UsuarioHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	admin, err := h.deleteUC.Execute(c.Request.Context(), adminID, id)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeCannotDeleteOwnAccount):
			// Nada mudou; a conta e a sessão continuam válidas.
			h.sessions.Flash(c, session.FlashError, "Você não pode excluir sua própria conta.")
			c.Redirect(http.StatusSeeOther, "/admin/usuarios/")
		case httperr.IsBusiness(err, httperr.CodeAdministratorNotFound):
			httperr.NotFound(c, httperr.CodeAdministratorNotFound, "Administrador não encontrado.")
		default:
			httperr.Internal(c, "failed_to_delete_administrator", "Erro ao excluir administrador.")
		}
		return
	}

	h.sessions.Flash(c, session.FlashSuccess,
		fmt.Sprintf("Administrador '%s' excluído com sucesso.", admin.Username))
	c.Redirect(http.StatusSeeOther, "/admin/usuarios/")
}
