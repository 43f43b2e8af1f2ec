package usuario

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gestaoweb/portal-documentos/internal/audit"
	domain "github.com/gestaoweb/portal-documentos/internal/domain/portal"
	"github.com/gestaoweb/portal-documentos/internal/httperr"
	"github.com/gestaoweb/portal-documentos/internal/models"
)

type DeleteAdministrator struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAdministrator(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAdministrator {
	return &DeleteAdministrator{
		repo:  repo,
		audit: audit,
	}
}

// Execute apaga uma conta de administrador. A própria conta do
// solicitante é intocável: a tentativa é rejeitada sem nenhuma mudança
// de estado e a sessão dele continua válida.
func (uc *DeleteAdministrator) Execute(
	ctx context.Context,
	actingAdminID uint,
	targetID uint,
) (*models.Administrator, error) {

	if actingAdminID == targetID {
		return nil, httperr.ErrBusiness(httperr.CodeCannotDeleteOwnAccount)
	}

	target, err := uc.repo.GetAdministratorByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeAdministratorNotFound)
		}
		return nil, err
	}

	if err := uc.repo.DeleteAdministrator(ctx, targetID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  &actingAdminID,
		Action:   "administrator_deleted",
		Entity:   "administrator",
		EntityID: &targetID,
		Metadata: map[string]string{"username": target.Username},
	})

	return target, nil
}
