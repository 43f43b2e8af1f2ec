package usuario

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gestaoweb/portal-documentos/internal/domain/portal/mocks"
	"github.com/gestaoweb/portal-documentos/internal/httperr"
	"github.com/gestaoweb/portal-documentos/internal/models"
)

// A rejeição vem antes de qualquer acesso ao banco: nem lookup, nem delete.
func TestDeleteAdministrator_PropriaContaRejeitada(t *testing.T) {
	repo := new(mocks.MockRepository)

	_, err := NewDeleteAdministrator(repo, nil).Execute(context.Background(), 5, 5)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "cannot_delete_own_account"))
	repo.AssertNotCalled(t, "GetAdministratorByID", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "DeleteAdministrator", mock.Anything, mock.Anything)
}

func TestDeleteAdministrator_Sucesso(t *testing.T) {
	repo := new(mocks.MockRepository)
	repo.On("GetAdministratorByID", context.Background(), uint(8)).
		Return(&models.Administrator{ID: 8, Username: "joao"}, nil)
	repo.On("DeleteAdministrator", context.Background(), uint(8)).Return(nil)

	target, err := NewDeleteAdministrator(repo, nil).Execute(context.Background(), 5, 8)

	require.NoError(t, err)
	assert.Equal(t, "joao", target.Username)
	repo.AssertExpectations(t)
}

func TestDeleteAdministrator_Inexistente(t *testing.T) {
	repo := new(mocks.MockRepository)
	repo.On("GetAdministratorByID", context.Background(), uint(8)).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := NewDeleteAdministrator(repo, nil).Execute(context.Background(), 5, 8)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "administrator_not_found"))
	repo.AssertNotCalled(t, "DeleteAdministrator", mock.Anything, mock.Anything)
}
