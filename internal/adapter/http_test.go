// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/accbox/internal/config"
	"github.com/MKhiriev/accbox/internal/logger"
	"github.com/MKhiriev/accbox/internal/utils"
	"github.com/MKhiriev/accbox/models"
)

const testToken = "0123456789abcdef"

// fakeAPI emulates the AccBox REST contract in memory.
type fakeAPI struct {
	mu        sync.Mutex
	accounts  map[int64]models.Account
	totp      map[int64]models.TOTPConfig
	nextID    int64
	requestID []string
	lastBody  map[string]json.RawMessage
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		accounts: map[int64]models.Account{
			1: {ID: 1, TypeID: 2, Email: "alice@example.com", Combos: []models.Combo{{5, 2}}, Has2FA: true},
		},
		totp: map[int64]models.TOTPConfig{
			1: {Secret: "JBSWY3DPEHPK3PXP", Issuer: "Example", Type: models.OTPTypeTOTP, Algorithm: "SHA1", Digits: 6, Period: 30},
		},
		nextID: 2,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeRaw(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, body)
}

func detail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Detail: msg})
}

func (f *fakeAPI) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requestID = append(f.requestID, r.Header.Get(utils.RequestIDHeader))
		f.mu.Unlock()
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			detail(w, http.StatusUnauthorized, "invalid token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *fakeAPI) account(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		detail(w, http.StatusBadRequest, "bad id")
		return 0, false
	}
	if _, ok := f.accounts[id]; !ok {
		detail(w, http.StatusNotFound, "account not found")
		return 0, false
	}
	return id, true
}

func (f *fakeAPI) decode(r *http.Request, v any) {
	raw, _ := io.ReadAll(r.Body)
	f.lastBody = nil
	_ = json.Unmarshal(raw, &f.lastBody)
	_ = json.Unmarshal(raw, v)
}

func (f *fakeAPI) router() http.Handler {
	r := chi.NewRouter()

	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, models.HealthResponse{Status: "healthy", Version: "3.0"})
	})
	r.Post("/api/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		f.decode(r, &req)
		switch {
		case req.Username == "locked":
			detail(w, http.StatusLocked, "locked for 15 minutes")
		case req.Password != "secret":
			detail(w, http.StatusUnauthorized, "wrong password")
		default:
			writeJSON(w, http.StatusOK, models.LoginResponse{Token: testToken, User: models.User{ID: 7, Username: req.Username}})
		}
	})

	r.Group(func(r chi.Router) {
		r.Use(f.auth)

		r.Get("/api/accounts", func(w http.ResponseWriter, _ *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			list := make([]models.Account, 0, len(f.accounts))
			for id := int64(1); id < f.nextID; id++ {
				if a, ok := f.accounts[id]; ok {
					list = append(list, a)
				}
			}
			writeJSON(w, http.StatusOK, models.AccountsResponse{Accounts: list})
		})
		r.Post("/api/accounts", func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			var in models.AccountCreate
			f.decode(r, &in)
			id := f.nextID
			f.nextID++
			f.accounts[id] = models.Account{ID: id, TypeID: in.TypeID, Email: in.Email, Combos: in.Combos}
			writeJSON(w, http.StatusOK, models.CreatedResponse{Message: "created", ID: id})
		})
		r.Put("/api/accounts/{id}", func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			id, ok := f.account(w, r)
			if !ok {
				return
			}
			var upd models.AccountUpdate
			f.decode(r, &upd)
			a := f.accounts[id]
			if upd.Combos != nil {
				a.Combos = *upd.Combos
			}
			f.accounts[id] = a
			writeJSON(w, http.StatusOK, map[string]string{"message": "updated"})
		})
		r.Delete("/api/accounts/{id}", func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if id, ok := f.account(w, r); ok {
				delete(f.accounts, id)
				writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
			}
		})
		r.Post("/api/accounts/{id}/use", func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if id, ok := f.account(w, r); ok {
				a := f.accounts[id]
				a.LastUsed = models.Timestamp{Time: time.Now()}
				f.accounts[id] = a
				writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
			}
		})
		r.Post("/api/accounts/{id}/favorite", func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if id, ok := f.account(w, r); ok {
				a := f.accounts[id]
				a.IsFavorite = !a.IsFavorite
				f.accounts[id] = a
				writeJSON(w, http.StatusOK, models.FavoriteResponse{IsFavorite: a.IsFavorite})
			}
		})
		r.Get("/api/account-types", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, models.AccountTypesResponse{Types: []models.AccountType{{ID: 2, Name: "Steam", Icon: "S"}}})
		})
		r.Get("/api/property-groups", func(w http.ResponseWriter, _ *http.Request) {
			writeRaw(w, `{"groups":[{"id":10,"name":"Status","sort_order":0,"values":[{"id":"2","group_id":10,"name":"limited","color":"#f59e0b","hidden":false}]}]}`)
		})
		r.Get("/api/accounts/{id}/totp", func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if id, ok := f.account(w, r); ok {
				cfg, ok := f.totp[id]
				if !ok {
					writeRaw(w, `{"secret": null}`)
					return
				}
				writeJSON(w, http.StatusOK, cfg)
			}
		})
		r.Get("/api/accounts/{id}/totp/generate", func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if id, ok := f.account(w, r); ok {
				if _, ok := f.totp[id]; !ok {
					detail(w, http.StatusNotFound, "2FA not configured")
					return
				}
				writeJSON(w, http.StatusOK, models.TOTPCode{Code: "123456", Remaining: 17, Period: 30, Type: models.OTPTypeTOTP})
			}
		})
		r.Post("/api/accounts/{id}/totp", func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if id, ok := f.account(w, r); ok {
				var in struct {
					Secret string         `json:"secret"`
					Type   models.OTPType `json:"totp_type"`
				}
				f.decode(r, &in)
				f.totp[id] = models.TOTPConfig{Secret: in.Secret, Type: in.Type}
				writeJSON(w, http.StatusOK, map[string]string{"message": "saved"})
			}
		})
		r.Post("/api/accounts/{id}/totp/parse", func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if _, ok := f.account(w, r); ok {
				var in struct {
					URI string `json:"uri"`
				}
				f.decode(r, &in)
				if in.URI == "" {
					detail(w, http.StatusBadRequest, "invalid otpauth URI")
					return
				}
				writeJSON(w, http.StatusOK, models.TOTPImportResult{Message: "imported", Issuer: "GitHub", Type: models.OTPTypeTOTP, Digits: 6})
			}
		})
		r.Delete("/api/accounts/{id}/totp", func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if id, ok := f.account(w, r); ok {
				delete(f.totp, id)
				writeJSON(w, http.StatusOK, map[string]string{"message": "removed"})
			}
		})
	})
	return r
}

// newTestAdapter creates an httpAdapter pointed at a fresh fake API.
func newTestAdapter(t *testing.T, token string) (*httpAdapter, *fakeAPI) {
	t.Helper()
	api := newFakeAPI()
	srv := httptest.NewServer(api.router())
	t.Cleanup(srv.Close)

	a, err := NewHTTPAdapter(
		config.Adapter{HTTPAddress: srv.URL, RequestTimeout: 5 * time.Second},
		config.App{Token: token},
		logger.Nop(),
	)
	require.NoError(t, err)
	return a.(*httpAdapter), api
}

// ── Construction ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "adds scheme", raw: "localhost:8000", want: "http://localhost:8000"},
		{name: "trims slash", raw: " https://box.example.com/ ", want: "https://box.example.com"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPAdapter(config.Adapter{}, config.App{}, logger.Nop())
	assert.Error(t, err)
}

func TestNewHTTPAdapter_InitialToken(t *testing.T) {
	a, _ := newTestAdapter(t, "  "+testToken+"\n")
	assert.Equal(t, testToken, a.Token())
}

// ── Login / Health ───────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	a, api := newTestAdapter(t, "")

	resp, err := a.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.User.ID)
	assert.Equal(t, testToken, a.Token())
	assert.Equal(t, `"alice"`, string(api.lastBody["username"]))
}

func TestLogin_WrongPassword(t *testing.T) {
	a, _ := newTestAdapter(t, "")

	_, err := a.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "nope"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "wrong password")
	assert.Empty(t, a.Token())
}

func TestLogin_Locked(t *testing.T) {
	a, _ := newTestAdapter(t, "")

	_, err := a.Login(context.Background(), models.LoginRequest{Username: "locked", Password: "secret"})

	assert.ErrorIs(t, err, ErrLocked)
	assert.Contains(t, err.Error(), "locked for 15 minutes")
}

func TestHealth(t *testing.T) {
	a, _ := newTestAdapter(t, "")

	got, err := a.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "healthy", got.Status)
}

// ── Accounts ─────────────────────────────────────────────────────────────────

func TestListAccounts_Unauthorized(t *testing.T) {
	a, _ := newTestAdapter(t, "")

	_, err := a.ListAccounts(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAccountLifecycle(t *testing.T) {
	a, api := newTestAdapter(t, testToken)
	ctx := context.Background()

	id, err := a.CreateAccount(ctx, models.AccountCreate{TypeID: 2, Email: "bob@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)
	assert.Equal(t, "[]", string(api.lastBody["combos"]), "nil combos sent as empty list")

	combos := []models.Combo{{7}}
	require.NoError(t, a.UpdateAccount(ctx, id, models.AccountUpdate{Combos: &combos}))
	_, hasEmail := api.lastBody["email"]
	assert.False(t, hasEmail, "partial update omits nil fields")

	fav, err := a.ToggleFavorite(ctx, id)
	require.NoError(t, err)
	assert.True(t, fav)

	require.NoError(t, a.RecordUse(ctx, id))

	list, err := a.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, []models.Combo{{7}}, list[1].Combos)
	assert.True(t, list[1].IsFavorite)
	assert.False(t, list[1].LastUsed.IsZero())

	require.NoError(t, a.DeleteAccount(ctx, id))
	assert.ErrorIs(t, a.DeleteAccount(ctx, id), ErrNotFound)
}

func TestCatalogs(t *testing.T) {
	a, _ := newTestAdapter(t, testToken)
	ctx := context.Background()

	types, err := a.ListAccountTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "Steam", types[0].Name)

	groups, err := a.ListPropertyGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Values, 1)
	assert.Equal(t, models.ValueID(2), groups[0].Values[0].ID, "string ids decode")
}

// ── TOTP ─────────────────────────────────────────────────────────────────────

func TestTOTPLifecycle(t *testing.T) {
	a, api := newTestAdapter(t, testToken)
	ctx := context.Background()

	cfg, err := a.GetTOTPConfig(ctx, 1)
	require.NoError(t, err)
	assert.True(t, cfg.Configured())
	assert.Equal(t, "JBSWY3DPEHPK3PXP", cfg.Secret)

	code, err := a.GenerateTOTPCode(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.TOTPCode{Code: "123456", Remaining: 17, Period: 30, Type: models.OTPTypeTOTP}, code)

	require.NoError(t, a.DeleteTOTPConfig(ctx, 1))

	cfg, err = a.GetTOTPConfig(ctx, 1)
	require.NoError(t, err)
	assert.False(t, cfg.Configured(), "null secret means not configured")

	_, err = a.GenerateTOTPCode(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	req := models.NewTOTPConfigRequest(models.TOTPConfig{Secret: "MTIzNDU2Nzg5MDEyMzQ1Njc4OTA=", Type: models.OTPTypeSteam})
	require.NoError(t, a.SaveTOTPConfig(ctx, 1, req))
	assert.Equal(t, `"steam"`, string(api.lastBody["totp_type"]))

	cfg, err = a.GetTOTPConfig(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.OTPTypeSteam, cfg.Type)
}

func TestImportTOTPURI(t *testing.T) {
	a, api := newTestAdapter(t, testToken)
	ctx := context.Background()

	res, err := a.ImportTOTPURI(ctx, 1, "otpauth://totp/GitHub:alice?secret=JBSWY3DPEHPK3PXP")
	require.NoError(t, err)
	assert.Equal(t, "GitHub", res.Issuer)
	assert.Contains(t, string(api.lastBody["uri"]), "otpauth://")

	_, err = a.ImportTOTPURI(ctx, 1, "")
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "invalid otpauth URI")

	_, err = a.ImportTOTPURI(ctx, 99, "otpauth://totp/x?secret=A")
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Request IDs ──────────────────────────────────────────────────────────────

func TestRequestIDs(t *testing.T) {
	a, api := newTestAdapter(t, testToken)

	_, err := a.ListAccounts(context.Background())
	require.NoError(t, err)
	_, err = a.ListAccounts(utils.WithRequestID(context.Background(), "trace-1"))
	require.NoError(t, err)

	require.Len(t, api.requestID, 2)
	parsed, err := uuid.Parse(api.requestID[0])
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.Equal(t, "trace-1", api.requestID[1])
}

// ── Context ──────────────────────────────────────────────────────────────────

func TestCancelledContext(t *testing.T) {
	a, _ := newTestAdapter(t, testToken)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.ListAccounts(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
