package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the JWT claims carried by a session token. The account
// number binds the token to the ledger session it was issued for.
type SessionClaims struct {
	jwt.RegisteredClaims
	AccountNumber int64  `json:"account_number"`
	HolderName    string `json:"holder_name"`
	TokenType     string `json:"token_type"`
}
