package listingapi

import (
	"context"
	"net/http"

	"listing-service/internal/core/domain"
)

const usersBase = "/users/user"

// UpdateProfileInput - частичное обновление профиля.
type UpdateProfileInput struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

// AvatarUpdate - результат загрузки аватара.
type AvatarUpdate struct {
	Message string
	URL     string
}

// GetProfile возвращает профиль текущего пользователя.
func (c *Client) GetProfile(ctx context.Context, accessToken string) (*domain.User, error) {
	var envelope userEnvelope
	err := c.doRequest(ctx, http.MethodGet, usersBase, RequestConfig{AccessToken: accessToken}, nil, "", &envelope)
	if err != nil {
		return nil, err
	}
	user := envelope.Data.toDomain()
	return &user, nil
}

// UpdateProfile обновляет full_name и/или phone.
func (c *Client) UpdateProfile(ctx context.Context, input UpdateProfileInput, accessToken string) (*domain.User, error) {
	var envelope userEnvelope
	err := c.doJSON(ctx, http.MethodPut, usersBase, RequestConfig{AccessToken: accessToken}, input, &envelope)
	if err != nil {
		return nil, err
	}
	user := envelope.Data.toDomain()
	return &user, nil
}

// UpdateAvatar загружает аватар (multipart, поле "image").
func (c *Client) UpdateAvatar(ctx context.Context, fileName string, content []byte, accessToken string) (*AvatarUpdate, error) {
	files := []FileUpload{{FieldName: "image", FileName: fileName, Content: content}}

	var dto avatarUpdateDTO
	err := c.doMultipart(ctx, http.MethodPut, usersBase+"/avatar", RequestConfig{AccessToken: accessToken}, files, &dto)
	if err != nil {
		return nil, err
	}
	return &AvatarUpdate{Message: dto.Message, URL: dto.URL}, nil
}

// DeleteAvatar удаляет аватар профиля.
func (c *Client) DeleteAvatar(ctx context.Context, accessToken string) error {
	return c.doRequest(ctx, http.MethodDelete, usersBase+"/avatar", RequestConfig{AccessToken: accessToken}, nil, "", nil)
}

// DeleteUser удаляет аккаунт текущего пользователя.
func (c *Client) DeleteUser(ctx context.Context, accessToken string) error {
	return c.doRequest(ctx, http.MethodDelete, usersBase, RequestConfig{AccessToken: accessToken}, nil, "", nil)
}
