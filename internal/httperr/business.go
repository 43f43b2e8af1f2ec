package httperr

import "errors"

// Códigos de negócio do portal. São o contrato entre usecases e
// handlers e viajam como `error_code` nas respostas HTTP.
const (
	CodeInvalidAdminCredentials  = "invalid_admin_credentials"
	CodeInvalidClientCredentials = "invalid_client_credentials"

	CodeNomeEmpresaRequired = "nome_empresa_required"
	CodeInvalidCNPJFormat   = "invalid_cnpj_format"
	CodeSenhaRequired       = "senha_required"
	CodeCNPJAlreadyExists   = "cnpj_already_exists"
	CodeClienteNotFound     = "cliente_not_found"

	CodeTituloRequired         = "titulo_required"
	CodeArquivoRequired        = "arquivo_required"
	CodeDocumentoNotFound      = "documento_not_found"
	CodeFileRemovalFailed      = "file_removal_failed"
	CodeDanglingDocumentRecord = "dangling_document_record"

	CodeUsernameRequired       = "username_required"
	CodeEmailRequired          = "email_required"
	CodeUsernameAlreadyExists  = "username_already_exists"
	CodeAdministratorNotFound  = "administrator_not_found"
	CodeCannotDeleteOwnAccount = "cannot_delete_own_account"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
