package documento

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gestaoweb/portal-documentos/internal/domain/portal/mocks"
	"github.com/gestaoweb/portal-documentos/internal/httperr"
	"github.com/gestaoweb/portal-documentos/internal/models"
	storagemocks "github.com/gestaoweb/portal-documentos/internal/storage/mocks"
)

func docFixture() *models.Documento {
	return &models.Documento{
		ID:         3,
		ClienteID:  7,
		Titulo:     "Contrato Social",
		StorageKey: "documentos/abc.pdf",
	}
}

func TestDeleteDocumento_BlobPrimeiroDepoisALinha(t *testing.T) {
	repo := new(mocks.MockRepository)
	blobs := new(storagemocks.MockBlobStore)

	repo.On("GetDocumentoByID", context.Background(), uint(3)).Return(docFixture(), nil)
	blobs.On("Delete", context.Background(), "documentos/abc.pdf").Return(nil)
	repo.On("DeleteDocumento", context.Background(), uint(3)).Return(nil)

	doc, err := NewDeleteDocumento(repo, blobs, nil).Execute(context.Background(), 1, 3)

	require.NoError(t, err)
	assert.Equal(t, uint(7), doc.ClienteID)
	repo.AssertExpectations(t)
	blobs.AssertExpectations(t)
}

// Blob vivo + linha viva quando a remoção do arquivo falha: o registro
// nunca cai antes do arquivo.
func TestDeleteDocumento_FalhaNoBlobPreservaALinha(t *testing.T) {
	repo := new(mocks.MockRepository)
	blobs := new(storagemocks.MockBlobStore)

	repo.On("GetDocumentoByID", context.Background(), uint(3)).Return(docFixture(), nil)
	blobs.On("Delete", context.Background(), "documentos/abc.pdf").
		Return(errors.New("s3: access denied"))

	_, err := NewDeleteDocumento(repo, blobs, nil).Execute(context.Background(), 1, 3)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "file_removal_failed"))
	repo.AssertNotCalled(t, "DeleteDocumento", mock.Anything, mock.Anything)
}

// Blob já removido mas a linha resiste: o registro órfão é reportado,
// nunca engolido.
func TestDeleteDocumento_RegistroOrfaoEhReportado(t *testing.T) {
	repo := new(mocks.MockRepository)
	blobs := new(storagemocks.MockBlobStore)

	repo.On("GetDocumentoByID", context.Background(), uint(3)).Return(docFixture(), nil)
	blobs.On("Delete", context.Background(), "documentos/abc.pdf").Return(nil)
	repo.On("DeleteDocumento", context.Background(), uint(3)).
		Return(errors.New("deadlock detected"))

	_, err := NewDeleteDocumento(repo, blobs, nil).Execute(context.Background(), 1, 3)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "dangling_document_record"))
}

func TestDeleteDocumento_Inexistente(t *testing.T) {
	repo := new(mocks.MockRepository)
	blobs := new(storagemocks.MockBlobStore)

	repo.On("GetDocumentoByID", context.Background(), uint(3)).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := NewDeleteDocumento(repo, blobs, nil).Execute(context.Background(), 1, 3)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "documento_not_found"))
	blobs.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
