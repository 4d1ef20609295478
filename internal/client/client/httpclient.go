package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/usergate/internal/client/models"
	"github.com/dmitrijs2005/usergate/internal/common"
)

var _ Client = (*HTTPClient)(nil)

type HTTPClient struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	http    *http.Client
}

// NewHTTPClient returns a client for the API rooted at baseURL
// (e.g. https://reqres.in/api). hc may be nil.
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration, hc *http.Client) *HTTPClient {
	if hc == nil {
		hc = &http.Client{}
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		timeout: timeout,
		http:    hc,
	}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	status, body, err := c.do(ctx, http.MethodPost, "/login", nil, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, &AuthError{Message: GenericLoginMessage, Err: err}
	}

	var resp models.LoginResponse
	decodeErr := json.Unmarshal(body, &resp)

	if !isSuccess(status) {
		msg := resp.Error
		if msg == "" {
			msg = GenericLoginMessage
		}
		return nil, &AuthError{Message: msg, Err: fmt.Errorf("status %d", status)}
	}
	if decodeErr != nil {
		return nil, &AuthError{Message: GenericLoginMessage, Err: fmt.Errorf("decode login response: %w", decodeErr)}
	}
	if resp.Token == "" {
		return nil, &AuthError{Message: GenericLoginMessage, Err: fmt.Errorf("response carries no token")}
	}
	return &resp, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context, page int) (*models.UserPage, error) {
	q := url.Values{"page": {strconv.Itoa(page)}}
	status, body, err := c.do(ctx, http.MethodGet, "/users", q, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: list page %d: %w", common.ErrLoadFailed, page, err)
	}
	if !isSuccess(status) {
		return nil, fmt.Errorf("%w: list page %d: status %d", common.ErrLoadFailed, page, status)
	}

	var p models.UserPage
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("%w: decode page %d: %w", common.ErrLoadFailed, page, err)
	}
	return &p, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, id int) (*models.User, error) {
	status, body, err := c.do(ctx, http.MethodGet, userPath(id), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: get user %d: %w", common.ErrLoadFailed, id, err)
	}
	if !isSuccess(status) {
		return nil, fmt.Errorf("%w: %w: user %d: status %d", common.ErrLoadFailed, common.ErrNotFound, id, status)
	}

	var envelope struct {
		Data *models.User `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decode user %d: %w", common.ErrLoadFailed, id, err)
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("%w: %w: user %d: empty body", common.ErrLoadFailed, common.ErrNotFound, id)
	}
	return envelope.Data, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id int, u models.UserUpdate) error {
	status, _, err := c.do(ctx, http.MethodPut, userPath(id), nil, u)
	if err != nil {
		return fmt.Errorf("%w: update user %d: %w", common.ErrUpdateFailed, id, err)
	}
	if !isSuccess(status) {
		return fmt.Errorf("%w: update user %d: status %d", common.ErrUpdateFailed, id, status)
	}
	return nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id int) error {
	status, _, err := c.do(ctx, http.MethodDelete, userPath(id), nil, nil)
	if err != nil {
		return fmt.Errorf("%w: delete user %d: %w", common.ErrDeleteIgnored, id, err)
	}
	if !isSuccess(status) {
		return fmt.Errorf("%w: delete user %d: status %d", common.ErrDeleteIgnored, id, status)
	}
	return nil
}

// do sends one request and returns the status and the full body.
// Transport failures are reported as common.ErrUnavailable.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, payload any) (int, []byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(common.APIKeyHeaderName, c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: read body: %w", common.ErrUnavailable, err)
	}
	return resp.StatusCode, b, nil
}

func userPath(id int) string {
	return "/users/" + strconv.Itoa(id)
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
