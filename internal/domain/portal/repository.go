package portal

import (
	"context"

	"github.com/gestaoweb/portal-documentos/internal/models"
)

// ClienteComDocs é a linha da listagem administrativa: o cliente
// anotado com a contagem de documentos.
type ClienteComDocs struct {
	models.Cliente
	DocCount int64 `json:"doc_count"`
}

type Repository interface {
	// -------- Administrator --------
	FindAdministratorsByEmail(
		ctx context.Context,
		email string,
	) ([]models.Administrator, error)

	GetAdministratorByID(
		ctx context.Context,
		id uint,
	) (*models.Administrator, error)

	ListAdministrators(
		ctx context.Context,
	) ([]models.Administrator, error)

	CountAdministratorsByUsername(
		ctx context.Context,
		username string,
	) (int64, error)

	CreateAdministrator(
		ctx context.Context,
		admin *models.Administrator,
	) error

	DeleteAdministrator(
		ctx context.Context,
		id uint,
	) error

	// -------- Cliente --------
	GetClienteByID(
		ctx context.Context,
		id uint,
	) (*models.Cliente, error)

	GetClienteByCNPJ(
		ctx context.Context,
		cnpj string,
	) (*models.Cliente, error)

	ListClientes(
		ctx context.Context,
	) ([]ClienteComDocs, error)

	CountClientes(
		ctx context.Context,
	) (int64, error)

	CreateCliente(
		ctx context.Context,
		cliente *models.Cliente,
	) error

	UpdateCliente(
		ctx context.Context,
		cliente *models.Cliente,
	) error

	DeleteCliente(
		ctx context.Context,
		id uint,
	) error

	// -------- Documento --------
	GetDocumentoByID(
		ctx context.Context,
		id uint,
	) (*models.Documento, error)

	ListDocumentosByCliente(
		ctx context.Context,
		clienteID uint,
	) ([]models.Documento, error)

	CountDocumentos(
		ctx context.Context,
	) (int64, error)

	CreateDocumento(
		ctx context.Context,
		doc *models.Documento,
	) error

	DeleteDocumento(
		ctx context.Context,
		id uint,
	) error
}
