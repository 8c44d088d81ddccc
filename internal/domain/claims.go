package domain

import "github.com/golang-jwt/jwt/v5"

// Claims do token emitido no upload. O subject é o id do dataset.
type Claims struct {
	DatasetID string `json:"dataset_id"`
	jwt.RegisteredClaims
}
