package documento

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gestaoweb/portal-documentos/internal/domain/portal/mocks"
	"github.com/gestaoweb/portal-documentos/internal/httperr"
	"github.com/gestaoweb/portal-documentos/internal/models"
	storagemocks "github.com/gestaoweb/portal-documentos/internal/storage/mocks"
)

func uploadInput() UploadInput {
	return UploadInput{
		Titulo:      "Contrato Social",
		Filename:    "Contrato.PDF",
		ContentType: "application/pdf",
		Size:        2048,
		Body:        strings.NewReader("%PDF-1.7 ..."),
	}
}

func TestUploadDocumento_Execute(t *testing.T) {
	cliente := &models.Cliente{ID: 7, NomeEmpresa: "Transportes Silva Ltda"}

	tests := []struct {
		name       string
		input      func() UploadInput
		setupMocks func(repo *mocks.MockRepository, blobs *storagemocks.MockBlobStore)
		wantErr    string
	}{
		{
			name: "titulo em branco",
			input: func() UploadInput {
				in := uploadInput()
				in.Titulo = "   "
				return in
			},
			setupMocks: func(repo *mocks.MockRepository, blobs *storagemocks.MockBlobStore) {},
			wantErr:    "titulo_required",
		},
		{
			name: "sem arquivo",
			input: func() UploadInput {
				in := uploadInput()
				in.Body = nil
				in.Size = 0
				return in
			},
			setupMocks: func(repo *mocks.MockRepository, blobs *storagemocks.MockBlobStore) {},
			wantErr:    "arquivo_required",
		},
		{
			name:  "cliente inexistente",
			input: uploadInput,
			setupMocks: func(repo *mocks.MockRepository, blobs *storagemocks.MockBlobStore) {
				repo.On("GetClienteByID", context.Background(), uint(7)).
					Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: "cliente_not_found",
		},
		{
			name:  "sucesso",
			input: uploadInput,
			setupMocks: func(repo *mocks.MockRepository, blobs *storagemocks.MockBlobStore) {
				repo.On("GetClienteByID", context.Background(), uint(7)).Return(cliente, nil)
				blobs.On("Put",
					context.Background(),
					mock.MatchedBy(func(key string) bool {
						return strings.HasPrefix(key, "documentos/") && strings.HasSuffix(key, ".pdf")
					}),
					mock.Anything,
					int64(2048),
					"application/pdf",
				).Return(nil)
				repo.On("CreateDocumento", context.Background(), mock.AnythingOfType("*models.Documento")).
					Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockRepository)
			blobs := new(storagemocks.MockBlobStore)
			tt.setupMocks(repo, blobs)

			doc, err := NewUploadDocumento(repo, blobs, nil).
				Execute(context.Background(), 1, 7, tt.input())

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, httperr.IsBusiness(err, tt.wantErr))
				assert.Nil(t, doc)
			} else {
				require.NoError(t, err)
				require.NotNil(t, doc)
				assert.Equal(t, uint(7), doc.ClienteID)
				assert.Equal(t, "Contrato Social", doc.Titulo)
				assert.WithinDuration(t, time.Now().UTC(), doc.DataEnvio, 5*time.Second)
			}
			repo.AssertExpectations(t)
			blobs.AssertExpectations(t)
		})
	}
}

// Um arquivo de zero bytes é um documento legítimo.
func TestUploadDocumento_ArquivoVazioEhAceito(t *testing.T) {
	repo := new(mocks.MockRepository)
	blobs := new(storagemocks.MockBlobStore)

	repo.On("GetClienteByID", context.Background(), uint(7)).
		Return(&models.Cliente{ID: 7}, nil)
	blobs.On("Put", context.Background(), mock.AnythingOfType("string"), mock.Anything, int64(0), "application/pdf").
		Return(nil)
	repo.On("CreateDocumento", context.Background(), mock.AnythingOfType("*models.Documento")).
		Return(nil)

	in := uploadInput()
	in.Size = 0
	in.Body = strings.NewReader("")

	doc, err := NewUploadDocumento(repo, blobs, nil).
		Execute(context.Background(), 1, 7, in)

	require.NoError(t, err)
	assert.Equal(t, int64(0), doc.Size)
	repo.AssertExpectations(t)
	blobs.AssertExpectations(t)
}

// A falha na gravação da linha desfaz o upload do blob.
func TestUploadDocumento_RollbackDoBlob(t *testing.T) {
	repo := new(mocks.MockRepository)
	blobs := new(storagemocks.MockBlobStore)

	var putKey string
	repo.On("GetClienteByID", context.Background(), uint(7)).
		Return(&models.Cliente{ID: 7}, nil)
	blobs.On("Put", context.Background(), mock.AnythingOfType("string"), mock.Anything, int64(2048), "application/pdf").
		Run(func(args mock.Arguments) {
			putKey = args.String(1)
		}).
		Return(nil)
	repo.On("CreateDocumento", context.Background(), mock.AnythingOfType("*models.Documento")).
		Return(errors.New("deadlock detected"))
	blobs.On("Delete", context.Background(), mock.AnythingOfType("string")).Return(nil)

	_, err := NewUploadDocumento(repo, blobs, nil).
		Execute(context.Background(), 1, 7, uploadInput())

	require.Error(t, err)
	blobs.AssertCalled(t, "Delete", context.Background(), putKey)
}

// A falha no blob store não deixa linha para trás.
func TestUploadDocumento_FalhaNoBlobNaoGravaLinha(t *testing.T) {
	repo := new(mocks.MockRepository)
	blobs := new(storagemocks.MockBlobStore)

	repo.On("GetClienteByID", context.Background(), uint(7)).
		Return(&models.Cliente{ID: 7}, nil)
	blobs.On("Put", context.Background(), mock.AnythingOfType("string"), mock.Anything, int64(2048), "application/pdf").
		Return(errors.New("s3: timeout"))

	_, err := NewUploadDocumento(repo, blobs, nil).
		Execute(context.Background(), 1, 7, uploadInput())

	require.Error(t, err)
	repo.AssertNotCalled(t, "CreateDocumento", mock.Anything, mock.Anything)
}
