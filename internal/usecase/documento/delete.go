package documento

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

type DeleteDocumento struct {
	repo  domain.Repository
	blobs storage.BlobStore
	audit *audit.Dispatcher
}

func NewDeleteDocumento(
	repo domain.Repository,
	blobs storage.BlobStore,
	audit *audit.Dispatcher,
) *DeleteDocumento {
	return &DeleteDocumento{
		repo:  repo,
		blobs: blobs,
		audit: audit,
	}
}

// Execute remove primeiro o blob e depois a linha. Se o blob não sai, a
// linha fica; perder o ponteiro para um arquivo vivo é pior. Se a linha
// falha depois do blob removido, sobra um registro apontando para nada e
// isso é reportado como erro fatal, nunca engolido.
func (uc *DeleteDocumento) Execute(
	ctx context.Context,
	adminID uint,
	documentoID uint,
) (*models.Documento, error) {

	doc, err := uc.repo.GetDocumentoByID(ctx, documentoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeDocumentoNotFound)
		}
		return nil, err
	}

	if err := uc.blobs.Delete(ctx, doc.StorageKey); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeFileRemovalFailed)
	}

	if err := uc.repo.DeleteDocumento(ctx, documentoID); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeDanglingDocumentRecord)
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "documento_deleted",
		Entity:   "documento",
		EntityID: &documentoID,
		Metadata: map[string]any{
			"cliente_id": doc.ClienteID,
			"titulo":     doc.Titulo,
		},
	})

	return doc, nil
}
