package models

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User is the authenticated user as returned on login.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// LoginResponse is returned by POST /api/login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// AccountsResponse wraps GET /api/accounts.
type AccountsResponse struct {
	Accounts []Account `json:"accounts"`
}

// AccountTypesResponse wraps GET /api/account-types.
type AccountTypesResponse struct {
	Types []AccountType `json:"types"`
}

// PropertyGroupsResponse wraps GET /api/property-groups.
type PropertyGroupsResponse struct {
	Groups []PropertyGroup `json:"groups"`
}

// CreatedResponse is returned by create endpoints.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// FavoriteResponse is returned by POST /api/accounts/{id}/favorite.
type FavoriteResponse struct {
	IsFavorite bool `json:"is_favorite"`
}

// ErrorResponse is the error body every endpoint uses.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
