package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	portal "github.com/gestaoweb/portal-documentos/internal/domain/portal"
	"github.com/gestaoweb/portal-documentos/internal/models"
)

type MockRepository struct {
	mock.Mock
}

// -------- Administrator --------

func (m *MockRepository) FindAdministratorsByEmail(ctx context.Context, email string) ([]models.Administrator, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Administrator), args.Error(1)
}

func (m *MockRepository) GetAdministratorByID(ctx context.Context, id uint) (*models.Administrator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Administrator), args.Error(1)
}

func (m *MockRepository) ListAdministrators(ctx context.Context) ([]models.Administrator, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Administrator), args.Error(1)
}

func (m *MockRepository) CountAdministratorsByUsername(ctx context.Context, username string) (int64, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CreateAdministrator(ctx context.Context, admin *models.Administrator) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockRepository) DeleteAdministrator(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// -------- Cliente --------

func (m *MockRepository) GetClienteByID(ctx context.Context, id uint) (*models.Cliente, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cliente), args.Error(1)
}

func (m *MockRepository) GetClienteByCNPJ(ctx context.Context, cnpj string) (*models.Cliente, error) {
	args := m.Called(ctx, cnpj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cliente), args.Error(1)
}

func (m *MockRepository) ListClientes(ctx context.Context) ([]portal.ClienteComDocs, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portal.ClienteComDocs), args.Error(1)
}

func (m *MockRepository) CountClientes(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CreateCliente(ctx context.Context, cliente *models.Cliente) error {
	args := m.Called(ctx, cliente)
	return args.Error(0)
}

func (m *MockRepository) UpdateCliente(ctx context.Context, cliente *models.Cliente) error {
	args := m.Called(ctx, cliente)
	return args.Error(0)
}

func (m *MockRepository) DeleteCliente(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// -------- Documento --------

func (m *MockRepository) GetDocumentoByID(ctx context.Context, id uint) (*models.Documento, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Documento), args.Error(1)
}

func (m *MockRepository) ListDocumentosByCliente(ctx context.Context, clienteID uint) ([]models.Documento, error) {
	args := m.Called(ctx, clienteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Documento), args.Error(1)
}

func (m *MockRepository) CountDocumentos(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CreateDocumento(ctx context.Context, doc *models.Documento) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockRepository) DeleteDocumento(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
