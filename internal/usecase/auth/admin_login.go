package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/gestaoweb/portal-documentos/internal/domain/portal"
	"github.com/gestaoweb/portal-documentos/internal/httperr"
	"github.com/gestaoweb/portal-documentos/internal/models"
)

type AdminLogin struct {
	repo domain.Repository
}

func NewAdminLogin(repo domain.Repository) *AdminLogin {
	return &AdminLogin{repo: repo}
}

// Execute valida e-mail + senha de um administrador. Toda falha (e-mail
// desconhecido, e-mail ambíguo, senha errada, conta sem flag de staff)
// retorna o mesmo código, para não revelar qual campo falhou.
func (uc *AdminLogin) Execute(
	ctx context.Context,
	email string,
	senha string,
) (*models.Administrator, error) {

	email = strings.ToLower(strings.TrimSpace(email))

	admins, err := uc.repo.FindAdministratorsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// E-mail não tem unicidade no schema; login ambíguo é rejeitado.
	if len(admins) != 1 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidAdminCredentials)
	}

	admin := admins[0]

	if err := bcrypt.CompareHashAndPassword(
		[]byte(admin.PasswordHash),
		[]byte(senha),
	); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidAdminCredentials)
	}

	if !admin.IsStaff {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidAdminCredentials)
	}

	return &admin, nil
}
