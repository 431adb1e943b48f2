package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/blindledger/internal/common"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the caller's address as the token subject.
type Claims struct {
	jwt.RegisteredClaims
	Address string `json:"addr"`
}

func GenerateToken(addr ethcommon.Address, secretKey []byte, validityDuration time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(validityDuration)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   addr.Hex(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Address: addr.Hex(),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// AddressFromToken validates tokenString and returns the address it was
// issued to. Expired tokens fail with common.ErrTokenExpired, anything else
// with common.ErrInvalidToken.
func AddressFromToken(tokenString string, secretKey []byte) (ethcommon.Address, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ethcommon.Address{}, common.ErrTokenExpired
		}
		return ethcommon.Address{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid || !ethcommon.IsHexAddress(claims.Address) {
		return ethcommon.Address{}, common.ErrInvalidToken
	}
	return ethcommon.HexToAddress(claims.Address), nil
}
