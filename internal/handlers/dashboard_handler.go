package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/gestaoweb/portal-documentos/internal/domain/portal"
	"github.com/gestaoweb/portal-documentos/internal/httperr"
	"github.com/gestaoweb/portal-documentos/internal/session"
)

type DashboardHandler struct {
	repo     domain.Repository
	sessions *session.Manager
}

func NewDashboardHandler(repo domain.Repository, sessions *session.Manager) *DashboardHandler {
	return &DashboardHandler{repo: repo, sessions: sessions}
}

func (h *DashboardHandler) Show(c *gin.Context) {
	totalClientes, err := h.repo.CountClientes(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_count_clientes", "Erro ao carregar o painel.")
		return
	}

	totalDocs, err := h.repo.CountDocumentos(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_count_documentos", "Erro ao carregar o painel.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_clientes":   totalClientes,
		"total_documentos": totalDocs,
		"messages":         h.sessions.PopFlashes(c),
	})
}
