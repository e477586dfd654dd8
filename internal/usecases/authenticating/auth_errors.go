package authenticating

import "errors"

// Erros de autenticação. A aplicação tem uma única identidade administrativa,
// então a taxonomia é curta.
var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrInvalidToken       = errors.New("token inválido")
	ErrExpiredToken       = errors.New("token expirado")

	// ErrAdminNotConfigured indica que o par ADMIN_USERNAME/ADMIN_PASSWORD
	// não foi definido no ambiente. É erro de configuração, nunca retentado.
	ErrAdminNotConfigured = errors.New("credenciais de administrador não configuradas")
)
