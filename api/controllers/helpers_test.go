package controllers

import (
	"github.com/naturetrails/naturetrails-backend/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                 "test-secret-key",
		Issuer:                 "naturetrails-test",
		ExpirationMinutes:      15,
		RefreshTokenTTLMinutes: 60,
	}
}
