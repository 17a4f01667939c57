package httpapi

import (
	"context"

	"github.com/example/atelier/internal/ports/secondary"
)

type loginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponseDTO struct {
	Token    string `json:"token"`
	UserType string `json:"user_type"`
}

// Login sends POST /login.
func (c *Client) Login(ctx context.Context, email, password string) (*secondary.LoginRecord, error) {
	var out loginResponseDTO
	if err := c.do(ctx, "POST", "/login", "", loginDTO{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &secondary.LoginRecord{Token: out.Token, UserType: out.UserType}, nil
}
