package dto

const TokenTypeBearer = "bearer"

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	CustomerID  uint   `json:"customer_id"`
}
