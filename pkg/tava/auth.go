package tava

import (
	"context"
	"net/http"
)

type TokenRequest struct {
	GrantType    string `json:"grant_type"`
	Email        string `json:"email,omitempty"`
	Password     string `json:"password,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Account struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

func (client client) Token(
	ctx context.Context,
	tokenRequest TokenRequest,
) (*TokenResponse, error) {
	var response *TokenResponse
	err := client.sendRequest(
		ctx,
		http.MethodPost,
		"auth/token",
		"",
		tokenRequest,
		&response,
	)
	if err != nil {
		return nil, err
	}

	return response, nil
}

func (client client) Me(ctx context.Context) (*Account, error) {
	var account *Account
	err := client.sendRequest(ctx, http.MethodGet, "auth/me", "", nil, &account)
	if err != nil {
		return nil, err
	}

	return account, nil
}

func (client client) SignOut(ctx context.Context) error {
	return client.sendRequest(ctx, http.MethodPost, "auth/signout", "", nil, nil)
}
