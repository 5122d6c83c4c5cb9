package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenIssuer はこのバックエンドが発行したトークンを識別します。
const tokenIssuer = "stockevent_backend"

// Generator はアクセストークンの発行を抽象化します。
type Generator interface {
	// GenerateToken は指定ユーザー向けの署名済みトークンを返します。
	GenerateToken(userID uint, email string) (string, error)
}

// hs256Generator は共有シークレットでHS256署名するGenerator実装です。
type hs256Generator struct {
	secret     []byte
	expiration time.Duration
}

// NewGenerator は有効期限expirationのトークンを発行するGeneratorを生成します。
func NewGenerator(secret string, expiration time.Duration) Generator {
	return &hs256Generator{secret: []byte(secret), expiration: expiration}
}

// GenerateToken はユーザーIDをsubに、通知送信で使うメールアドレスを
// emailクレームに載せた署名済みトークンを返します。
// subはミドルウェア側で数値として読み戻されます。
func (g *hs256Generator) GenerateToken(userID uint, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   tokenIssuer,
		"sub":   userID,
		"iat":   now.Unix(),
		"exp":   now.Add(g.expiration).Unix(),
		"email": email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
