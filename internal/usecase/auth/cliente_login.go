package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	domain "github.com/gestaoweb/portal-documentos/internal/domain/portal"
	"github.com/gestaoweb/portal-documentos/internal/httperr"
	"github.com/gestaoweb/portal-documentos/internal/models"
)

type ClienteLogin struct {
	repo domain.Repository
}

func NewClienteLogin(repo domain.Repository) *ClienteLogin {
	return &ClienteLogin{repo: repo}
}

// Execute valida CNPJ + senha. CNPJ inexistente e senha errada produzem
// o mesmo código de erro.
func (uc *ClienteLogin) Execute(
	ctx context.Context,
	cnpj string,
	senha string,
) (*models.Cliente, error) {

	cnpj = strings.TrimSpace(cnpj)

	cliente, err := uc.repo.GetClienteByCNPJ(ctx, cnpj)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidClientCredentials)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(cliente.SenhaHash),
		[]byte(senha),
	); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidClientCredentials)
	}

	return cliente, nil
}
