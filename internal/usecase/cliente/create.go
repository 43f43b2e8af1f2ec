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

type CreateCliente struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateCliente(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateCliente {
	return &CreateCliente{
		repo:  repo,
		audit: audit,
	}
}

type CreateClienteInput struct {
	NomeEmpresa string
	CNPJ        string
	Senha       string
}

func (uc *CreateCliente) Execute(
	ctx context.Context,
	adminID uint,
	in CreateClienteInput,
) (*models.Cliente, error) {

	in.NomeEmpresa = strings.TrimSpace(in.NomeEmpresa)
	in.CNPJ = strings.TrimSpace(in.CNPJ)

	if in.NomeEmpresa == "" {
		return nil, httperr.ErrBusiness(httperr.CodeNomeEmpresaRequired)
	}
	if !validators.IsCNPJFormatValid(in.CNPJ) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCNPJFormat)
	}
	if in.Senha == "" {
		return nil, httperr.ErrBusiness(httperr.CodeSenhaRequired)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	cliente := models.Cliente{
		NomeEmpresa: in.NomeEmpresa,
		CNPJ:        in.CNPJ,
		SenhaHash:   string(hashed),
	}

	// A unicidade do CNPJ é garantida pelo índice único; a inserção é a
	// checagem, sem corrida entre verificação e gravação.
	if err := uc.repo.CreateCliente(ctx, &cliente); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, httperr.ErrBusiness(httperr.CodeCNPJAlreadyExists)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "cliente_created",
		Entity:   "cliente",
		EntityID: &cliente.ID,
		Metadata: map[string]string{"nome_empresa": cliente.NomeEmpresa},
	})

	return &cliente, nil
}
