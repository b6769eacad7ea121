package listingapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"listing-service/internal/core/domain"
)

const authBase = "/auth"

// Типы аккаунтов при регистрации.
const (
	AccountTypeUser  = "user"
	AccountTypeAgent = "agent"
)

// RegisterInput - тело регистрации.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// AuthSession - ответ register/login. Формы user и session
// определяются провайдером аутентификации, клиент их не интерпретирует.
type AuthSession struct {
	User    json.RawMessage
	Session json.RawMessage
}

// Register регистрирует аккаунт. accountType - "user" или "agent";
// пустая строка означает "user".
func (c *Client) Register(ctx context.Context, input RegisterInput, accountType string) (*AuthSession, error) {
	if accountType == "" {
		accountType = AccountTypeUser
	}
	params := url.Values{}
	params.Set("type", accountType)

	var envelope authSessionEnvelope
	err := c.doJSON(ctx, http.MethodPost, authBase+"/register", RequestConfig{Params: params}, input, &envelope)
	if err != nil {
		return nil, err
	}
	return &AuthSession{User: envelope.Data.User, Session: envelope.Data.Session}, nil
}

// Login обменивает email и пароль на сессию с токенами.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthSession, error) {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var envelope authSessionEnvelope
	err := c.doJSON(ctx, http.MethodPost, authBase+"/login", RequestConfig{}, payload, &envelope)
	if err != nil {
		return nil, err
	}
	return &AuthSession{User: envelope.Data.User, Session: envelope.Data.Session}, nil
}

// RefreshToken обменивает refresh-токен на новую пару токенов.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	payload := struct {
		RefreshToken string `json:"refresh_token"`
	}{RefreshToken: refreshToken}

	var dto tokenPairDTO
	err := c.doJSON(ctx, http.MethodPost, authBase+"/refresh-token", RequestConfig{}, payload, &dto)
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{
		AccessToken:  dto.AccessToken,
		RefreshToken: dto.RefreshToken,
		ExpiresIn:    dto.ExpiresIn,
	}, nil
}
