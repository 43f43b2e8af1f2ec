package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/gestaoweb/portal-documentos/internal/domain/portal"
	"github.com/gestaoweb/portal-documentos/internal/httperr"
	"github.com/gestaoweb/portal-documentos/internal/middleware"
	"github.com/gestaoweb/portal-documentos/internal/models"
	"github.com/gestaoweb/portal-documentos/internal/session"
	ucCliente "github.com/gestaoweb/portal-documentos/internal/usecase/cliente"
	ucDocumento "github.com/gestaoweb/portal-documentos/internal/usecase/documento"
)

type ClienteHandler struct {
	repo     domain.Repository
	sessions *session.Manager

	createUC *ucCliente.CreateCliente
	updateUC *ucCliente.UpdateCliente
	deleteUC *ucCliente.DeleteCliente
	uploadUC *ucDocumento.UploadDocumento
}

func NewClienteHandler(
	repo domain.Repository,
	sessions *session.Manager,
	createUC *ucCliente.CreateCliente,
	updateUC *ucCliente.UpdateCliente,
	deleteUC *ucCliente.DeleteCliente,
	uploadUC *ucDocumento.UploadDocumento,
) *ClienteHandler {
	return &ClienteHandler{
		repo:     repo,
		sessions: sessions,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		uploadUC: uploadUC,
	}
}

// --------- Requests ---------

type ClienteFormRequest struct {
	NomeEmpresa string `form:"nome_empresa" json:"nome_empresa"`
	CNPJ        string `form:"cnpj" json:"cnpj"`
	Senha       string `form:"senha" json:"senha"`
}

// ======================================================
// LISTAGEM
// ======================================================

func (h *ClienteHandler) List(c *gin.Context) {
	rows, err := h.repo.ListClientes(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_clientes", "Erro ao listar clientes.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clientes": rows,
		"messages": h.sessions.PopFlashes(c),
	})
}

// ======================================================
// CADASTRO
// ======================================================

func (h *ClienteHandler) NewForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":    "Cadastrar Novo Cliente",
		"messages": h.sessions.PopFlashes(c),
	})
}

func (h *ClienteHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	var req ClienteFormRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	cliente, err := h.createUC.Execute(c.Request.Context(), adminID, ucCliente.CreateClienteInput{
		NomeEmpresa: req.NomeEmpresa,
		CNPJ:        req.CNPJ,
		Senha:       req.Senha,
	})
	if err != nil {
		if fields := clienteFieldErrors(err); fields != nil {
			httperr.ValidationError(c, fields)
			return
		}
		httperr.Internal(c, "failed_to_create_cliente", "Erro ao criar cliente.")
		return
	}

	h.sessions.Flash(c, session.FlashSuccess,
		fmt.Sprintf("Cliente '%s' criado com sucesso!", cliente.NomeEmpresa))
	c.Redirect(http.StatusSeeOther, "/admin/clientes/")
}

// ======================================================
// EDIÇÃO
// ======================================================

func (h *ClienteHandler) EditForm(c *gin.Context) {
	cliente, ok := h.fetch(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title":    "Editar Cliente",
		"cliente":  cliente,
		"messages": h.sessions.PopFlashes(c),
	})
}

func (h *ClienteHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req ClienteFormRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	_, err := h.updateUC.Execute(c.Request.Context(), adminID, id, ucCliente.UpdateClienteInput{
		NomeEmpresa: req.NomeEmpresa,
		CNPJ:        req.CNPJ,
		Senha:       req.Senha,
	})
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeClienteNotFound) {
			httperr.NotFound(c, httperr.CodeClienteNotFound, "Cliente não encontrado.")
			return
		}
		if fields := clienteFieldErrors(err); fields != nil {
			httperr.ValidationError(c, fields)
			return
		}
		httperr.Internal(c, "failed_to_update_cliente", "Erro ao atualizar cliente.")
		return
	}

	h.sessions.Flash(c, session.FlashSuccess, "Dados do cliente atualizados com sucesso!")
	c.Redirect(http.StatusSeeOther, "/admin/clientes/")
}

// ======================================================
// EXCLUSÃO
// ======================================================

func (h *ClienteHandler) ConfirmDelete(c *gin.Context) {
	cliente, ok := h.fetch(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title":    "Confirmar Exclusão",
		"cliente":  cliente,
		"messages": h.sessions.PopFlashes(c),
	})
}

func (h *ClienteHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	cliente, err := h.deleteUC.Execute(c.Request.Context(), adminID, id)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeClienteNotFound) {
			httperr.NotFound(c, httperr.CodeClienteNotFound, "Cliente não encontrado.")
			return
		}
		if httperr.IsBusiness(err, httperr.CodeFileRemovalFailed) {
			httperr.Internal(c, httperr.CodeFileRemovalFailed,
				"Não foi possível remover os arquivos do cliente; nada foi excluído.")
			return
		}
		httperr.Internal(c, "failed_to_delete_cliente", "Erro ao excluir cliente.")
		return
	}

	h.sessions.Flash(c, session.FlashSuccess,
		fmt.Sprintf("Cliente '%s' excluído com sucesso.", cliente.NomeEmpresa))
	c.Redirect(http.StatusSeeOther, "/admin/clientes/")
}

// ======================================================
// DETALHE + UPLOAD DE DOCUMENTO
// ======================================================

func (h *ClienteHandler) Detail(c *gin.Context) {
	cliente, ok := h.fetch(c)
	if !ok {
		return
	}

	docs, err := h.repo.ListDocumentosByCliente(c.Request.Context(), cliente.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_documentos", "Erro ao listar documentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cliente":    cliente,
		"documentos": docs,
		"messages":   h.sessions.PopFlashes(c),
	})
}

func (h *ClienteHandler) Upload(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	titulo := c.PostForm("titulo")

	fileHeader, err := c.FormFile("arquivo")
	if err != nil {
		httperr.ValidationError(c, map[string]string{"arquivo": "Selecione um arquivo."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_upload", "Erro ao ler o arquivo enviado.")
		return
	}
	defer file.Close()

	doc, err := h.uploadUC.Execute(c.Request.Context(), adminID, id, ucDocumento.UploadInput{
		Titulo:      titulo,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeClienteNotFound):
			httperr.NotFound(c, httperr.CodeClienteNotFound, "Cliente não encontrado.")
		case httperr.IsBusiness(err, httperr.CodeTituloRequired):
			httperr.ValidationError(c, map[string]string{"titulo": "Campo obrigatório."})
		case httperr.IsBusiness(err, httperr.CodeArquivoRequired):
			httperr.ValidationError(c, map[string]string{"arquivo": "Selecione um arquivo."})
		default:
			httperr.Internal(c, "failed_to_upload_documento", "Erro ao enviar documento.")
		}
		return
	}

	h.sessions.Flash(c, session.FlashSuccess,
		fmt.Sprintf("Documento '%s' enviado com sucesso!", doc.Titulo))
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/admin/clientes/%d/", id))
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func (h *ClienteHandler) fetch(c *gin.Context) (*models.Cliente, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		return nil, false
	}

	cliente, err := h.repo.GetClienteByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeClienteNotFound, "Cliente não encontrado.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_cliente", "Erro ao carregar cliente.")
		return nil, false
	}
	return cliente, true
}

func clienteFieldErrors(err error) map[string]string {
	switch {
	case httperr.IsBusiness(err, httperr.CodeNomeEmpresaRequired):
		return map[string]string{"nome_empresa": "Campo obrigatório."}
	case httperr.IsBusiness(err, httperr.CodeInvalidCNPJFormat):
		return map[string]string{"cnpj": "CNPJ inválido. Use o formato XX.XXX.XXX/XXXX-XX."}
	case httperr.IsBusiness(err, httperr.CodeSenhaRequired):
		return map[string]string{"senha": "Campo obrigatório."}
	case httperr.IsBusiness(err, httperr.CodeCNPJAlreadyExists):
		return map[string]string{"cnpj": "Já existe um cliente com este CNPJ."}
	}
	return nil
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		httperr.NotFound(c, "invalid_id", "Registro não encontrado.")
		return 0, false
	}
	return uint(id), true
}
