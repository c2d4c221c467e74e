package token

import (
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
)

// SymmetricKeySize is the key length PASETO v4.local requires.
const SymmetricKeySize = 32

// Paseto issues PASETO v4.local tokens (XChaCha20 + BLAKE2b, symmetric).
type Paseto struct {
	symmetricKey paseto.V4SymmetricKey
	issuer       string
	ttl          time.Duration
	now          func() time.Time
}

func NewPaseto(symmetricKey []byte, issuer string, ttl time.Duration) (*Paseto, error) {
	if len(symmetricKey) != SymmetricKeySize {
		return nil, fmt.Errorf("symmetric key must be exactly %d bytes, got %d", SymmetricKeySize, len(symmetricKey))
	}

	key, err := paseto.V4SymmetricKeyFromBytes(symmetricKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create symmetric key: %w", err)
	}

	return &Paseto{
		symmetricKey: key,
		issuer:       issuer,
		ttl:          ttl,
		now:          time.Now,
	}, nil
}

// Issue encrypts a token whose subject is userID.
func (s *Paseto) Issue(userID string) (string, error) {
	now := s.now()

	token := paseto.NewToken()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(s.ttl))
	token.SetSubject(userID)
	if s.issuer != "" {
		token.SetIssuer(s.issuer)
	}

	return token.V4Encrypt(s.symmetricKey, nil), nil
}

// Verify decrypts tokenStr and checks issuer and expiry.
func (s *Paseto) Verify(tokenStr string) (*Claims, error) {
	parser := paseto.NewParserWithoutExpiryCheck()
	if s.issuer != "" {
		parser.AddRule(paseto.IssuedBy(s.issuer))
	}

	token, err := parser.ParseV4Local(s.symmetricKey, tokenStr, nil)
	if err != nil {
		return nil, ErrInvalidToken
	}

	userID, err := token.GetSubject()
	if err != nil || userID == "" {
		return nil, ErrInvalidToken
	}

	issuedAt, err := token.GetIssuedAt()
	if err != nil {
		return nil, ErrInvalidToken
	}

	expiresAt, err := token.GetExpiration()
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !s.now().Before(expiresAt) {
		return nil, ErrExpiredToken
	}

	return &Claims{
		UserID:    userID,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}
