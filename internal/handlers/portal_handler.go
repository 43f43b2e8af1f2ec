package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/gestaoweb/portal-documentos/internal/domain/portal"
	"github.com/gestaoweb/portal-documentos/internal/httperr"
	"github.com/gestaoweb/portal-documentos/internal/middleware"
	"github.com/gestaoweb/portal-documentos/internal/session"
	"github.com/gestaoweb/portal-documentos/internal/storage"
)

// PortalHandler é a superfície do cliente autenticado: somente leitura
// dos próprios documentos.
type PortalHandler struct {
	repo     domain.Repository
	blobs    storage.BlobStore
	sessions *session.Manager
}

func NewPortalHandler(
	repo domain.Repository,
	blobs storage.BlobStore,
	sessions *session.Manager,
) *PortalHandler {
	return &PortalHandler{
		repo:     repo,
		blobs:    blobs,
		sessions: sessions,
	}
}

func (h *PortalHandler) Dashboard(c *gin.Context) {
	cliente := middleware.CurrentCliente(c)

	docs, err := h.repo.ListDocumentosByCliente(c.Request.Context(), cliente.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_documentos", "Erro ao listar documentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cliente": gin.H{
			"id":           cliente.ID,
			"nome_empresa": cliente.NomeEmpresa,
			"cnpj":         cliente.CNPJ,
		},
		"documentos": docs,
		"messages":   h.sessions.PopFlashes(c),
	})
}

// Download só entrega documentos do próprio cliente; um id de outro
// cliente responde 404, não 403, para não confirmar que o documento
// existe.
func (h *PortalHandler) Download(c *gin.Context) {
	cliente := middleware.CurrentCliente(c)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	doc, err := h.repo.GetDocumentoByID(c.Request.Context(), id)
	if err != nil || doc.ClienteID != cliente.ID {
		httperr.NotFound(c, httperr.CodeDocumentoNotFound, "Documento não encontrado.")
		return
	}

	url, err := h.blobs.PresignGet(c.Request.Context(), doc.StorageKey, downloadURLTTL)
	if err != nil {
		httperr.Internal(c, "failed_to_presign", "Erro ao gerar link de download.")
		return
	}

	c.Redirect(http.StatusSeeOther, url)
}
