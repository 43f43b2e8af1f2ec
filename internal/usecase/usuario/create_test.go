package usuario

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gestaoweb/portal-documentos/internal/domain/portal/mocks"
	"github.com/gestaoweb/portal-documentos/internal/httperr"
	"github.com/gestaoweb/portal-documentos/internal/models"
)

func TestCreateAdministrator_Execute(t *testing.T) {
	tests := []struct {
		name       string
		input      CreateAdministratorInput
		setupMocks func(repo *mocks.MockRepository)
		wantErr    string
	}{
		{
			name:       "username em branco",
			input:      CreateAdministratorInput{Email: "joao@empresa.com.br", Senha: "senha-forte"},
			setupMocks: func(repo *mocks.MockRepository) {},
			wantErr:    "username_required",
		},
		{
			name:       "email em branco",
			input:      CreateAdministratorInput{Username: "joao", Senha: "senha-forte"},
			setupMocks: func(repo *mocks.MockRepository) {},
			wantErr:    "email_required",
		},
		{
			name:       "senha em branco",
			input:      CreateAdministratorInput{Username: "joao", Email: "joao@empresa.com.br"},
			setupMocks: func(repo *mocks.MockRepository) {},
			wantErr:    "senha_required",
		},
		{
			name:  "username ja existe",
			input: CreateAdministratorInput{Username: "joao", Email: "joao@empresa.com.br", Senha: "senha-forte"},
			setupMocks: func(repo *mocks.MockRepository) {
				repo.On("CountAdministratorsByUsername", context.Background(), "joao").
					Return(int64(1), nil)
			},
			wantErr: "username_already_exists",
		},
		{
			name:  "corrida perdida no insert",
			input: CreateAdministratorInput{Username: "joao", Email: "joao@empresa.com.br", Senha: "senha-forte"},
			setupMocks: func(repo *mocks.MockRepository) {
				repo.On("CountAdministratorsByUsername", context.Background(), "joao").
					Return(int64(0), nil)
				repo.On("CreateAdministrator", context.Background(), mock.AnythingOfType("*models.Administrator")).
					Return(gorm.ErrDuplicatedKey)
			},
			wantErr: "username_already_exists",
		},
		{
			name:  "sucesso",
			input: CreateAdministratorInput{Username: "  joao  ", Email: "  JOAO@Empresa.com.BR ", Senha: "senha-forte"},
			setupMocks: func(repo *mocks.MockRepository) {
				repo.On("CountAdministratorsByUsername", context.Background(), "joao").
					Return(int64(0), nil)
				repo.On("CreateAdministrator", context.Background(), mock.AnythingOfType("*models.Administrator")).
					Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockRepository)
			tt.setupMocks(repo)

			admin, err := NewCreateAdministrator(repo, nil).Execute(context.Background(), 1, tt.input)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, httperr.IsBusiness(err, tt.wantErr))
				assert.Nil(t, admin)
			} else {
				require.NoError(t, err)
				require.NotNil(t, admin)
				assert.Equal(t, "joao", admin.Username)
				assert.Equal(t, "joao@empresa.com.br", admin.Email)
			}
			repo.AssertExpectations(t)
		})
	}
}

// Toda conta criada pelo painel é staff e superuser, sem opção de
// conta comum.
func TestCreateAdministrator_FlagsSempreLigadas(t *testing.T) {
	repo := new(mocks.MockRepository)

	var saved *models.Administrator
	repo.On("CountAdministratorsByUsername", context.Background(), "joao").
		Return(int64(0), nil)
	repo.On("CreateAdministrator", context.Background(), mock.AnythingOfType("*models.Administrator")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*models.Administrator)
		}).
		Return(nil)

	_, err := NewCreateAdministrator(repo, nil).Execute(context.Background(), 1, CreateAdministratorInput{
		Username: "joao",
		Email:    "joao@empresa.com.br",
		Senha:    "senha-forte",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.True(t, saved.IsStaff)
	assert.True(t, saved.IsSuperuser)
	assert.NotEqual(t, "senha-forte", saved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("senha-forte")))
}
