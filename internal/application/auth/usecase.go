package auth

import (
	"strings"

	"github.com/jhoicas/garments-tracker-api/internal/domain"
	"github.com/jhoicas/garments-tracker-api/pkg/jwt"
)

// JWTConfig configuración para la emisión de credenciales.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase emisor de credenciales: intercambia un claim de identidad por un
// token firmado de vida limitada. No hay sesión en servidor: la credencial
// es la única prueba de autorización durante su ventana de validez, y el
// logout solo consiste en que el cliente descarte la cookie.
type UseCase struct {
	jwtCfg JWTConfig
}

// NewUseCase construye el emisor.
func NewUseCase(jwtCfg JWTConfig) *UseCase {
	return &UseCase{jwtCfg: jwtCfg}
}

// Issue firma el claim de identidad y devuelve el token para transportarlo
// como cookie HTTP-only. Un email vacío es entrada inválida.
func (uc *UseCase) Issue(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", domain.ErrInvalidInput
	}
	return jwt.Generate(uc.jwtCfg.Secret, email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}

// MaxAge devuelve la vida de la cookie en segundos (coincide con la
// expiración del token).
func (uc *UseCase) MaxAge() int {
	return uc.jwtCfg.ExpMinutes * 60
}
