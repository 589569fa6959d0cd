package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/httpclient"
)

// UserDetails is the subset of the user profile the order service consumes.
type UserDetails struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserClient resolves user refs against the user service.
type UserClient struct {
	baseURL string
	hc      *httpclient.Client
}

// NewUserClient creates a client for the user service at baseURL.
func NewUserClient(baseURL string, hc *httpclient.Client) *UserClient {
	return &UserClient{baseURL: baseURL, hc: hc}
}

// GetUser fetches user details by id.
func (c *UserClient) GetUser(ctx context.Context, id string) (*UserDetails, error) {
	resp, err := c.hc.Get(ctx, fmt.Sprintf("%s/api/v1/users/%s", c.baseURL, id))
	if err != nil {
		return nil, fmt.Errorf("user service request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, httpclient.ParseResponseError(resp, "user service")
	}

	var user UserDetails
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode user response: %w", err)
	}
	return &user, nil
}
