// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"identity/config"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/service"
	"identity/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    []byte        // Shared HMAC secret.
	ttl       time.Duration // Zero means tokens carry no exp claim.
	clockSkew time.Duration // Leeway applied to exp/iat checks.
	issuer    string
	parser    *jwt.Parser
	now       func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.SecretKey.Token == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	svc := &jwtService{
		secret: []byte(cfg.SecretKey.Token),
		now:    time.Now,
	}
	if cfg.Auth != nil {
		svc.ttl = cfg.Auth.TokenTTL
		svc.clockSkew = cfg.Auth.ClockSkew
		svc.issuer = cfg.Auth.Issuer
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(svc.clockSkew),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(func() time.Time { return svc.now() }),
	}
	if svc.issuer != "" {
		opts = append(opts, jwt.WithIssuer(svc.issuer))
	}
	if svc.ttl > 0 {
		opts = append(opts, jwt.WithExpirationRequired())
	}
	svc.parser = jwt.NewParser(opts...)

	return svc, nil
}

// Sign creates an HS256 token carrying the identity claims.
func (s *jwtService) Sign(identity service.Identity) (string, error) {
	now := s.now()
	claims := &service.Claims{
		Name:  identity.Name,
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
			Issuer:   s.issuer,
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify parses the token, checks its signature and registered claims, and requires name and email.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}
	if !token.Valid {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token is not valid")
	}
	if claims.Name == "" || claims.Email == "" {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token is missing required claims")
	}

	return claims, nil
}
