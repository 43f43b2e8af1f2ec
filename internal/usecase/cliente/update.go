package cliente

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gestaoweb/portal-documentos/internal/audit"
	domain "github.com/gestaoweb/portal-documentos/internal/domain/portal"
	"github.com/gestaoweb/portal-documentos/internal/httperr"
	"github.com/gestaoweb/portal-documentos/internal/models"
	"github.com/gestaoweb/portal-documentos/internal/validators"
)

type UpdateCliente struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateCliente(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateCliente {
	return &UpdateCliente{
		repo:  repo,
		audit: audit,
	}
}

type UpdateClienteInput struct {
	NomeEmpresa string
	CNPJ        string
	// Senha em branco preserva o hash atual.
	Senha string
}

func (uc *UpdateCliente) Execute(
	ctx context.Context,
	adminID uint,
	clienteID uint,
	in UpdateClienteInput,
) (*models.Cliente, error) {

	cliente, err := uc.repo.GetClienteByID(ctx, clienteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeClienteNotFound)
		}
		return nil, err
	}

	in.NomeEmpresa = strings.TrimSpace(in.NomeEmpresa)
	in.CNPJ = strings.TrimSpace(in.CNPJ)

	if in.NomeEmpresa == "" {
		return nil, httperr.ErrBusiness(httperr.CodeNomeEmpresaRequired)
	}
	if !validators.IsCNPJFormatValid(in.CNPJ) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCNPJFormat)
	}

	cliente.NomeEmpresa = in.NomeEmpresa
	cliente.CNPJ = in.CNPJ

	if in.Senha != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		cliente.SenhaHash = string(hashed)
	}

	if err := uc.repo.UpdateCliente(ctx, cliente); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, httperr.ErrBusiness(httperr.CodeCNPJAlreadyExists)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "cliente_updated",
		Entity:   "cliente",
		EntityID: &cliente.ID,
	})

	return cliente, nil
}
