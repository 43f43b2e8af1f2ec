package bootstrap

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/gestaoweb/portal-documentos/internal/config"
	domain "github.com/gestaoweb/portal-documentos/internal/domain/portal"
	"github.com/gestaoweb/portal-documentos/internal/models"
)

// EnsureAdmin provisiona o primeiro administrador a partir de variáveis
// de ambiente controladas pelo operador. Não existe rota HTTP para isso:
// sem as variáveis, nada acontece; com o username já cadastrado, nada
// acontece. A senha nunca é logada.
func EnsureAdmin(ctx context.Context, cfg *config.Config, repo domain.Repository) error {
	if cfg.BootstrapAdminUsername == "" ||
		cfg.BootstrapAdminEmail == "" ||
		cfg.BootstrapAdminSenha == "" {
		return nil
	}

	count, err := repo.CountAdministratorsByUsername(ctx, cfg.BootstrapAdminUsername)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword(
		[]byte(cfg.BootstrapAdminSenha),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	admin := models.Administrator{
		Username:     cfg.BootstrapAdminUsername,
		Email:        cfg.BootstrapAdminEmail,
		PasswordHash: string(hashed),
		IsStaff:      true,
		IsSuperuser:  true,
	}

	if err := repo.CreateAdministrator(ctx, &admin); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	log.Printf("bootstrap: administrador %q provisionado", admin.Username)
	return nil
}
