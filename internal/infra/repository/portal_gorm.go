package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/gestaoweb/portal-documentos/internal/domain/portal"
	"github.com/gestaoweb/portal-documentos/internal/models"
)

type PortalGormRepository struct {
	db *gorm.DB
}

func NewPortalGormRepository(db *gorm.DB) *PortalGormRepository {
	return &PortalGormRepository{db: db}
}

// --------------------------------------------------
// Administrator
// --------------------------------------------------

func (r *PortalGormRepository) FindAdministratorsByEmail(
	ctx context.Context,
	email string,
) ([]models.Administrator, error) {

	var admins []models.Administrator
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *PortalGormRepository) GetAdministratorByID(
	ctx context.Context,
	id uint,
) (*models.Administrator, error) {

	var admin models.Administrator
	if err := r.db.WithContext(ctx).First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *PortalGormRepository) ListAdministrators(
	ctx context.Context,
) ([]models.Administrator, error) {

	var admins []models.Administrator
	if err := r.db.WithContext(ctx).
		Where("is_staff = ?", true).
		Order("username ASC").
		Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *PortalGormRepository) CountAdministratorsByUsername(
	ctx context.Context,
	username string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Administrator{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PortalGormRepository) CreateAdministrator(
	ctx context.Context,
	admin *models.Administrator,
) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *PortalGormRepository) DeleteAdministrator(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Administrator{}, id).Error
}

// --------------------------------------------------
// Cliente
// --------------------------------------------------

func (r *PortalGormRepository) GetClienteByID(
	ctx context.Context,
	id uint,
) (*models.Cliente, error) {

	var cliente models.Cliente
	if err := r.db.WithContext(ctx).First(&cliente, id).Error; err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (r *PortalGormRepository) GetClienteByCNPJ(
	ctx context.Context,
	cnpj string,
) (*models.Cliente, error) {

	var cliente models.Cliente
	if err := r.db.WithContext(ctx).
		Where("cnpj = ?", cnpj).
		First(&cliente).Error; err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (r *PortalGormRepository) ListClientes(
	ctx context.Context,
) ([]domain.ClienteComDocs, error) {

	var rows []domain.ClienteComDocs
	if err := r.db.WithContext(ctx).
		Model(&models.Cliente{}).
		Select(`clientes.*,
			(SELECT COUNT(*) FROM documentos WHERE documentos.cliente_id = clientes.id) AS doc_count`).
		Order("nome_empresa ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PortalGormRepository) CountClientes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Cliente{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PortalGormRepository) CreateCliente(
	ctx context.Context,
	cliente *models.Cliente,
) error {
	// Violação do índice único de CNPJ chega como gorm.ErrDuplicatedKey
	// (TranslateError); o usecase converte em erro de conflito.
	return r.db.WithContext(ctx).Create(cliente).Error
}

func (r *PortalGormRepository) UpdateCliente(
	ctx context.Context,
	cliente *models.Cliente,
) error {
	return r.db.WithContext(ctx).Save(cliente).Error
}

func (r *PortalGormRepository) DeleteCliente(
	ctx context.Context,
	id uint,
) error {
	// As linhas de documentos caem pelo ON DELETE CASCADE; os blobs já
	// foram removidos pelo usecase antes de chegar aqui.
	return r.db.WithContext(ctx).Delete(&models.Cliente{}, id).Error
}

// --------------------------------------------------
// Documento
// --------------------------------------------------

func (r *PortalGormRepository) GetDocumentoByID(
	ctx context.Context,
	id uint,
) (*models.Documento, error) {

	var doc models.Documento
	if err := r.db.WithContext(ctx).First(&doc, id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *PortalGormRepository) ListDocumentosByCliente(
	ctx context.Context,
	clienteID uint,
) ([]models.Documento, error) {

	var docs []models.Documento
	if err := r.db.WithContext(ctx).
		Where("cliente_id = ?", clienteID).
		Order("data_envio DESC").
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *PortalGormRepository) CountDocumentos(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Documento{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PortalGormRepository) CreateDocumento(
	ctx context.Context,
	doc *models.Documento,
) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *PortalGormRepository) DeleteDocumento(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Documento{}, id).Error
}
