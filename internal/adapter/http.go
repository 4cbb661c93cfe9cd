package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/accbox/internal/config"
	"github.com/MKhiriev/accbox/internal/logger"
	"github.com/MKhiriev/accbox/internal/utils"
	"github.com/MKhiriev/accbox/models"
)

const (
	pathLogin          = "/api/login"
	pathHealth         = "/api/health"
	pathAccounts       = "/api/accounts"
	pathAccount        = "/api/accounts/{id}"
	pathAccountUse     = "/api/accounts/{id}/use"
	pathAccountFav     = "/api/accounts/{id}/favorite"
	pathAccountTypes   = "/api/account-types"
	pathPropertyGroups = "/api/property-groups"
	pathTOTP           = "/api/accounts/{id}/totp"
	pathTOTPGenerate   = "/api/accounts/{id}/totp/generate"
	pathTOTPParse      = "/api/accounts/{id}/totp/parse"
)

type httpAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAdapter constructs the resty implementation of [APIAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. appCfg.Token, when set, is installed as the initial
// bearer token.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPAdapter(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (APIAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(utils.NewUUIDGenerator())
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	a := &httpAdapter{client: client, logger: logger}
	a.SetToken(appCfg.Token)
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [APIAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [APIAdapter].
func (h *httpAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [APIAdapter]. It POSTs the credentials to POST /api/login
// and stores the token from the response body.
func (h *httpAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var out models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post(pathLogin)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}
	if out.Token == "" {
		return models.LoginResponse{}, fmt.Errorf("login: empty token in response")
	}

	h.SetToken(out.Token)
	h.logger.Debug().Int64("user_id", out.User.ID).Msg("logged in")
	return out, nil
}

// Health implements [APIAdapter].
func (h *httpAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var out models.HealthResponse

	resp, err := h.client.R().SetContext(ctx).SetResult(&out).Get(pathHealth)
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}
	return out, nil
}

// ListAccounts implements [APIAdapter].
func (h *httpAdapter) ListAccounts(ctx context.Context) ([]models.Account, error) {
	var out models.AccountsResponse

	resp, err := h.authedRequest(ctx).SetResult(&out).Get(pathAccounts)
	if err != nil {
		return nil, fmt.Errorf("list accounts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return out.Accounts, nil
}

// CreateAccount implements [APIAdapter]. It returns the server-assigned id.
func (h *httpAdapter) CreateAccount(ctx context.Context, account models.AccountCreate) (int64, error) {
	if account.Combos == nil {
		account.Combos = []models.Combo{}
	}
	if account.Tags == nil {
		account.Tags = []string{}
	}

	var out models.CreatedResponse
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(account).
		SetResult(&out).
		Post(pathAccounts)
	if err != nil {
		return 0, fmt.Errorf("create account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}
	return out.ID, nil
}

// UpdateAccount implements [APIAdapter].
func (h *httpAdapter) UpdateAccount(ctx context.Context, id int64, update models.AccountUpdate) error {
	resp, err := h.accountRequest(ctx, id).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put(pathAccount)
	if err != nil {
		return fmt.Errorf("update account request: %w", err)
	}
	return mapHTTPError(resp)
}

// DeleteAccount implements [APIAdapter].
func (h *httpAdapter) DeleteAccount(ctx context.Context, id int64) error {
	resp, err := h.accountRequest(ctx, id).Delete(pathAccount)
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}
	return mapHTTPError(resp)
}

// RecordUse implements [APIAdapter].
func (h *httpAdapter) RecordUse(ctx context.Context, id int64) error {
	resp, err := h.accountRequest(ctx, id).Post(pathAccountUse)
	if err != nil {
		return fmt.Errorf("record use request: %w", err)
	}
	return mapHTTPError(resp)
}

// ToggleFavorite implements [APIAdapter].
func (h *httpAdapter) ToggleFavorite(ctx context.Context, id int64) (bool, error) {
	var out models.FavoriteResponse

	resp, err := h.accountRequest(ctx, id).SetResult(&out).Post(pathAccountFav)
	if err != nil {
		return false, fmt.Errorf("toggle favorite request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}
	return out.IsFavorite, nil
}

// ListAccountTypes implements [APIAdapter].
func (h *httpAdapter) ListAccountTypes(ctx context.Context) ([]models.AccountType, error) {
	var out models.AccountTypesResponse

	resp, err := h.authedRequest(ctx).SetResult(&out).Get(pathAccountTypes)
	if err != nil {
		return nil, fmt.Errorf("list account types request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return out.Types, nil
}

// ListPropertyGroups implements [APIAdapter].
func (h *httpAdapter) ListPropertyGroups(ctx context.Context) ([]models.PropertyGroup, error) {
	var out models.PropertyGroupsResponse

	resp, err := h.authedRequest(ctx).SetResult(&out).Get(pathPropertyGroups)
	if err != nil {
		return nil, fmt.Errorf("list property groups request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return out.Groups, nil
}

// GetTOTPConfig implements [APIAdapter].
func (h *httpAdapter) GetTOTPConfig(ctx context.Context, id int64) (models.TOTPConfig, error) {
	var out models.TOTPConfig

	resp, err := h.accountRequest(ctx, id).SetResult(&out).Get(pathTOTP)
	if err != nil {
		return models.TOTPConfig{}, fmt.Errorf("get totp config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TOTPConfig{}, err
	}
	return out, nil
}

// GenerateTOTPCode implements [APIAdapter].
func (h *httpAdapter) GenerateTOTPCode(ctx context.Context, id int64) (models.TOTPCode, error) {
	var out models.TOTPCode

	resp, err := h.accountRequest(ctx, id).SetResult(&out).Get(pathTOTPGenerate)
	if err != nil {
		return models.TOTPCode{}, fmt.Errorf("generate totp code request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TOTPCode{}, err
	}
	return out, nil
}

// SaveTOTPConfig implements [APIAdapter].
func (h *httpAdapter) SaveTOTPConfig(ctx context.Context, id int64, cfg models.TOTPConfigRequest) error {
	resp, err := h.accountRequest(ctx, id).
		SetHeader("Content-Type", "application/json").
		SetBody(cfg).
		Post(pathTOTP)
	if err != nil {
		return fmt.Errorf("save totp config request: %w", err)
	}
	return mapHTTPError(resp)
}

// ImportTOTPURI implements [APIAdapter].
func (h *httpAdapter) ImportTOTPURI(ctx context.Context, id int64, uri string) (models.TOTPImportResult, error) {
	var out models.TOTPImportResult

	resp, err := h.accountRequest(ctx, id).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"uri": uri}).
		SetResult(&out).
		Post(pathTOTPParse)
	if err != nil {
		return models.TOTPImportResult{}, fmt.Errorf("import totp uri request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TOTPImportResult{}, err
	}
	return out, nil
}

// DeleteTOTPConfig implements [APIAdapter].
func (h *httpAdapter) DeleteTOTPConfig(ctx context.Context, id int64) error {
	resp, err := h.accountRequest(ctx, id).Delete(pathTOTP)
	if err != nil {
		return fmt.Errorf("delete totp config request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpAdapter) accountRequest(ctx context.Context, id int64) *resty.Request {
	return h.authedRequest(ctx).SetPathParam("id", strconv.FormatInt(id, 10))
}
