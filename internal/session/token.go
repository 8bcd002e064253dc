package session

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Bearer normaliza o token para o formato guardado no storage ("Bearer xxx"),
// que é enviado como veio no header Authorization.
func Bearer(token string) string {
	if token == "" {
		return ""
	}
	if strings.HasPrefix(token, "Bearer ") {
		return token
	}
	return "Bearer " + token
}

// NeedsLogin informa se o token ausente ou vencido exige novo login.
// A assinatura não é verificada — o cliente não tem a chave do servidor,
// só lê a claim exp para evitar uma chamada fadada a 401.
func NeedsLogin(token string, now time.Time) bool {
	raw := strings.TrimPrefix(token, "Bearer ")
	if raw == "" {
		return true
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		// Sem exp assumimos válido; o servidor decide.
		return false
	}
	return !exp.Time.After(now)
}
