package validators

import "strings"

// IsEmailValid faz a checagem sintática mínima: algo@dominio.com.
// Validação de verdade é papel do servidor real.
func IsEmailValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}
	return !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}
