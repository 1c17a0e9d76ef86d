package auth

// TokenManager defines the interface for token generation and validation.
type TokenManager interface {
	GenerateToken(userID, email, name, role string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Ensure JWTManager implements TokenManager interface
var _ TokenManager = (*JWTManager)(nil)
