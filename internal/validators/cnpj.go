package validators

// IsCNPJFormatValid verifica o formato XX.XXX.XXX/XXXX-XX.
// Não valida os dígitos verificadores: cadastros legados têm CNPJs
// de teste que precisam continuar acessando o portal.
func IsCNPJFormatValid(cnpj string) bool {
	if len(cnpj) != 18 {
		return false
	}

	for i, r := range cnpj {
		switch i {
		case 2, 6:
			if r != '.' {
				return false
			}
		case 10:
			if r != '/' {
				return false
			}
		case 15:
			if r != '-' {
				return false
			}
		default:
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}
