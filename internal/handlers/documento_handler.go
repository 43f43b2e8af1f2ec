package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/gestaoweb/portal-documentos/internal/domain/portal"
	"github.com/gestaoweb/portal-documentos/internal/httperr"
	"github.com/gestaoweb/portal-documentos/internal/middleware"
	"github.com/gestaoweb/portal-documentos/internal/session"
	"github.com/gestaoweb/portal-documentos/internal/storage"
	ucDocumento "github.com/gestaoweb/portal-documentos/internal/usecase/documento"
)

// Validade do link assinado de download.
const downloadURLTTL = 5 * time.Minute

type DocumentoHandler struct {
	repo     domain.Repository
	blobs    storage.BlobStore
	sessions *session.Manager
	deleteUC *ucDocumento.DeleteDocumento
}

func NewDocumentoHandler(
	repo domain.Repository,
	blobs storage.BlobStore,
	sessions *session.Manager,
	deleteUC *ucDocumento.DeleteDocumento,
) *DocumentoHandler {
	return &DocumentoHandler{
		repo:     repo,
		blobs:    blobs,
		sessions: sessions,
		deleteUC: deleteUC,
	}
}

func (h *DocumentoHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	doc, err := h.deleteUC.Execute(c.Request.Context(), adminID, id)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeDocumentoNotFound):
			httperr.NotFound(c, httperr.CodeDocumentoNotFound, "Documento não encontrado.")
		case httperr.IsBusiness(err, httperr.CodeFileRemovalFailed):
			httperr.Internal(c, httperr.CodeFileRemovalFailed,
				"Não foi possível remover o arquivo; o documento não foi excluído.")
		case httperr.IsBusiness(err, httperr.CodeDanglingDocumentRecord):
			// O arquivo já foi embora mas o registro ficou. Não pode
			// passar batido.
			httperr.Internal(c, httperr.CodeDanglingDocumentRecord,
				"O arquivo foi removido mas o registro não pôde ser excluído. Contate o suporte.")
		default:
			httperr.Internal(c, "failed_to_delete_documento", "Erro ao excluir documento.")
		}
		return
	}

	h.sessions.Flash(c, session.FlashSuccess,
		fmt.Sprintf("Documento '%s' excluído com sucesso.", doc.Titulo))
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/admin/clientes/%d/", doc.ClienteID))
}

// Download redireciona para uma URL assinada de curta duração em vez de
// servir os bytes pelo app.
func (h *DocumentoHandler) Download(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	doc, err := h.repo.GetDocumentoByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeDocumentoNotFound, "Documento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_documento", "Erro ao carregar documento.")
		return
	}

	url, err := h.blobs.PresignGet(c.Request.Context(), doc.StorageKey, downloadURLTTL)
	if err != nil {
		httperr.Internal(c, "failed_to_presign", "Erro ao gerar link de download.")
		return
	}

	c.Redirect(http.StatusSeeOther, url)
}
