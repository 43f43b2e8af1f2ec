package usuario

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
)

type CreateAdministrator struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAdministrator(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAdministrator {
	return &CreateAdministrator{
		repo:  repo,
		audit: audit,
	}
}

type CreateAdministratorInput struct {
	Username string
	Email    string
	Senha    string
}

// Execute cria um administrador. O painel não tem conceito de usuário
// comum: toda conta criada aqui sai com staff e superuser ligados,
// independente do que veio no formulário.
func (uc *CreateAdministrator) Execute(
	ctx context.Context,
	actingAdminID uint,
	in CreateAdministratorInput,
) (*models.Administrator, error) {

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.Username == "" {
		return nil, httperr.ErrBusiness(httperr.CodeUsernameRequired)
	}
	if in.Email == "" {
		return nil, httperr.ErrBusiness(httperr.CodeEmailRequired)
	}
	if in.Senha == "" {
		return nil, httperr.ErrBusiness(httperr.CodeSenhaRequired)
	}

	count, err := uc.repo.CountAdministratorsByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, httperr.ErrBusiness(httperr.CodeUsernameAlreadyExists)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := models.Administrator{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hashed),
		IsStaff:      true,
		IsSuperuser:  true,
	}

	if err := uc.repo.CreateAdministrator(ctx, &admin); err != nil {
		// O índice único de username cobre a corrida entre o count e o insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, httperr.ErrBusiness(httperr.CodeUsernameAlreadyExists)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  &actingAdminID,
		Action:   "administrator_created",
		Entity:   "administrator",
		EntityID: &admin.ID,
		Metadata: map[string]string{"username": admin.Username},
	})

	return &admin, nil
}
