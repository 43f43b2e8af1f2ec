package documento

import (
	"context"
	"errors"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gestaoweb/portal-documentos/internal/audit"
	domain "github.com/gestaoweb/portal-documentos/internal/domain/portal"
	"github.com/gestaoweb/portal-documentos/internal/httperr"
	"github.com/gestaoweb/portal-documentos/internal/models"
	"github.com/gestaoweb/portal-documentos/internal/storage"
)

type UploadDocumento struct {
	repo  domain.Repository
	blobs storage.BlobStore
	audit *audit.Dispatcher
}

func NewUploadDocumento(
	repo domain.Repository,
	blobs storage.BlobStore,
	audit *audit.Dispatcher,
) *UploadDocumento {
	return &UploadDocumento{
		repo:  repo,
		blobs: blobs,
		audit: audit,
	}
}

type UploadInput struct {
	Titulo      string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

func (uc *UploadDocumento) Execute(
	ctx context.Context,
	adminID uint,
	clienteID uint,
	in UploadInput,
) (*models.Documento, error) {

	in.Titulo = strings.TrimSpace(in.Titulo)
	if in.Titulo == "" {
		return nil, httperr.ErrBusiness(httperr.CodeTituloRequired)
	}
	// Arquivo vazio é válido; só a ausência do arquivo é rejeitada.
	if in.Body == nil || in.Size < 0 {
		return nil, httperr.ErrBusiness(httperr.CodeArquivoRequired)
	}

	cliente, err := uc.repo.GetClienteByID(ctx, clienteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeClienteNotFound)
		}
		return nil, err
	}

	contentType := in.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := "documentos/" + uuid.NewString() + strings.ToLower(filepath.Ext(in.Filename))

	if err := uc.blobs.Put(ctx, key, in.Body, in.Size, contentType); err != nil {
		return nil, err
	}

	doc := models.Documento{
		ClienteID:   cliente.ID,
		Titulo:      in.Titulo,
		StorageKey:  key,
		ContentType: contentType,
		Size:        in.Size,
		// Definida aqui, nunca pelo formulário.
		DataEnvio: time.Now().UTC(),
	}

	if err := uc.repo.CreateDocumento(ctx, &doc); err != nil {
		// Sem a linha no banco o blob ficaria sem dono; melhor tentar
		// desfazer o upload do que guardar um arquivo inalcançável.
		if delErr := uc.blobs.Delete(ctx, key); delErr != nil {
			log.Printf("upload rollback: blob %s ficou órfão: %v", key, delErr)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "documento_uploaded",
		Entity:   "documento",
		EntityID: &doc.ID,
		Metadata: map[string]any{
			"cliente_id": cliente.ID,
			"titulo":     doc.Titulo,
			"size":       doc.Size,
		},
	})

	return &doc, nil
}
