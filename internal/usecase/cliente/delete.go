package cliente

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gestaoweb/portal-documentos/internal/audit"
	domain "github.com/gestaoweb/portal-documentos/internal/domain/portal"
	"github.com/gestaoweb/portal-documentos/internal/httperr"
	"github.com/gestaoweb/portal-documentos/internal/models"
	"github.com/gestaoweb/portal-documentos/internal/storage"
)

type DeleteCliente struct {
	repo  domain.Repository
	blobs storage.BlobStore
	audit *audit.Dispatcher
}

func NewDeleteCliente(
	repo domain.Repository,
	blobs storage.BlobStore,
	audit *audit.Dispatcher,
) *DeleteCliente {
	return &DeleteCliente{
		repo:  repo,
		blobs: blobs,
		audit: audit,
	}
}

// Execute apaga o cliente e tudo que é dele. Os blobs saem primeiro; se
// algum falhar a exclusão inteira é abortada e nenhuma linha muda. As
// linhas de documentos só caem com o cliente, via cascade.
func (uc *DeleteCliente) Execute(
	ctx context.Context,
	adminID uint,
	clienteID uint,
) (*models.Cliente, error) {

	cliente, err := uc.repo.GetClienteByID(ctx, clienteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeClienteNotFound)
		}
		return nil, err
	}

	docs, err := uc.repo.ListDocumentosByCliente(ctx, clienteID)
	if err != nil {
		return nil, err
	}

	for _, doc := range docs {
		if err := uc.blobs.Delete(ctx, doc.StorageKey); err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeFileRemovalFailed)
		}
	}

	if err := uc.repo.DeleteCliente(ctx, clienteID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "cliente_deleted",
		Entity:   "cliente",
		EntityID: &clienteID,
		Metadata: map[string]any{
			"nome_empresa": cliente.NomeEmpresa,
			"documentos":   len(docs),
		},
	})

	return cliente, nil
}
