package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gestaoweb/portal-documentos/internal/audit"
	"github.com/gestaoweb/portal-documentos/internal/handlers"
	infraRepo "github.com/gestaoweb/portal-documentos/internal/infra/repository"
	"github.com/gestaoweb/portal-documentos/internal/middleware"
	"github.com/gestaoweb/portal-documentos/internal/session"
	"github.com/gestaoweb/portal-documentos/internal/storage"
	ucAuth "github.com/gestaoweb/portal-documentos/internal/usecase/auth"
	ucCliente "github.com/gestaoweb/portal-documentos/internal/usecase/cliente"
	ucDocumento "github.com/gestaoweb/portal-documentos/internal/usecase/documento"
	ucUsuario "github.com/gestaoweb/portal-documentos/internal/usecase/usuario"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	sessions *session.Manager,
	blobs storage.BlobStore,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(sessions.Middleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewPortalGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	adminLoginUC := ucAuth.NewAdminLogin(repo)
	clienteLoginUC := ucAuth.NewClienteLogin(repo)

	createClienteUC := ucCliente.NewCreateCliente(repo, auditDispatcher)
	updateClienteUC := ucCliente.NewUpdateCliente(repo, auditDispatcher)
	deleteClienteUC := ucCliente.NewDeleteCliente(repo, blobs, auditDispatcher)

	uploadDocumentoUC := ucDocumento.NewUploadDocumento(repo, blobs, auditDispatcher)
	deleteDocumentoUC := ucDocumento.NewDeleteDocumento(repo, blobs, auditDispatcher)

	createAdminUC := ucUsuario.NewCreateAdministrator(repo, auditDispatcher)
	deleteAdminUC := ucUsuario.NewDeleteAdministrator(repo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(adminLoginUC, clienteLoginUC, sessions)
	dashboardHandler := handlers.NewDashboardHandler(repo, sessions)

	clienteHandler := handlers.NewClienteHandler(
		repo,
		sessions,
		createClienteUC,
		updateClienteUC,
		deleteClienteUC,
		uploadDocumentoUC,
	)

	documentoHandler := handlers.NewDocumentoHandler(repo, blobs, sessions, deleteDocumentoUC)
	usuarioHandler := handlers.NewUsuarioHandler(repo, sessions, createAdminUC, deleteAdminUC)
	portalHandler := handlers.NewPortalHandler(repo, blobs, sessions)

	// ======================================================
	// AUTENTICAÇÃO
	// ======================================================
	r.GET("/login/admin/", authHandler.AdminLoginPage)
	r.POST("/login/admin/", authHandler.AdminLogin)
	r.GET("/login/cliente/", authHandler.ClienteLoginPage)
	r.POST("/login/cliente/", authHandler.ClienteLogin)

	r.GET("/logout/admin/", authHandler.AdminLogout)
	r.POST("/logout/admin/", authHandler.AdminLogout)
	r.GET("/logout/cliente/", authHandler.ClienteLogout)

	// ======================================================
	// PAINEL ADMINISTRATIVO
	// ======================================================
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdministrador(sessions, repo))
	{
		admin.GET("/dashboard/", dashboardHandler.Show)

		admin.GET("/clientes/", clienteHandler.List)
		admin.GET("/clientes/novo/", clienteHandler.NewForm)
		admin.POST("/clientes/novo/", clienteHandler.Create)
		admin.GET("/clientes/:id/editar/", clienteHandler.EditForm)
		admin.POST("/clientes/:id/editar/", clienteHandler.Update)
		admin.GET("/clientes/:id/excluir/", clienteHandler.ConfirmDelete)
		admin.POST("/clientes/:id/excluir/", clienteHandler.Delete)
		admin.GET("/clientes/:id/", clienteHandler.Detail)
		admin.POST("/clientes/:id/", clienteHandler.Upload)

		admin.POST("/documentos/:id/excluir/", documentoHandler.Delete)
		admin.GET("/documentos/:id/download/", documentoHandler.Download)

		admin.GET("/usuarios/", usuarioHandler.List)
		admin.GET("/usuarios/novo/", usuarioHandler.NewForm)
		admin.POST("/usuarios/novo/", usuarioHandler.Create)
		admin.GET("/usuarios/:id/excluir/", usuarioHandler.ConfirmDelete)
		admin.POST("/usuarios/:id/excluir/", usuarioHandler.Delete)
	}

	// ======================================================
	// ÁREA DO CLIENTE
	// ======================================================
	cliente := r.Group("/cliente")
	cliente.Use(middleware.RequireCliente(sessions, repo))
	{
		cliente.GET("/dashboard/", portalHandler.Dashboard)
		cliente.GET("/documentos/:id/download/", portalHandler.Download)
	}
}
