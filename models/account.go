// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Account is a single catalogued credential as returned by GET /api/accounts.
type Account struct {
	// ID is the server-assigned identifier of the account.
	ID int64 `json:"id"`

	// TypeID references an [AccountType]. Zero means the type was deleted
	// or never set (the server stores NULL).
	TypeID int64 `json:"type_id"`

	// Email is the login identifier of the account.
	Email string `json:"email"`

	// Password is the plaintext password. The server decrypts it before
	// sending, so it is visible to the client.
	Password string `json:"password"`

	// CustomName is an optional display name; Email is shown when empty.
	CustomName string `json:"customName"`

	// Country is an ISO country code or the globe emoji for "any".
	Country string `json:"country"`

	// Tags are free-form labels.
	Tags []string `json:"tags"`

	// Combos are the property combinations attached to the account.
	// An empty or absent list means no properties are set.
	Combos []Combo `json:"combos"`

	// Notes is free text.
	Notes string `json:"notes"`

	// IsFavorite marks the account as a favorite.
	IsFavorite bool `json:"is_favorite"`

	// Has2FA reports whether a TOTP configuration exists for the account.
	Has2FA bool `json:"has_2fa"`

	LastUsed  Timestamp `json:"last_used"`
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}

// DisplayName returns CustomName, or Email when no custom name is set.
func (a Account) DisplayName() string {
	if a.CustomName != "" {
		return a.CustomName
	}
	return a.Email
}

// HasNoCombos reports whether the account carries no property at all.
// Empty combos inside the list do not count as properties.
func (a Account) HasNoCombos() bool {
	for _, c := range a.Combos {
		if len(c) > 0 {
			return false
		}
	}
	return true
}

// AccountUpdate is the partial update body of PUT /api/accounts/{id}.
// Only non-nil fields are changed by the server.
type AccountUpdate struct {
	TypeID     *int64    `json:"type_id,omitempty"`
	Email      *string   `json:"email,omitempty"`
	Password   *string   `json:"password,omitempty"`
	Country    *string   `json:"country,omitempty"`
	CustomName *string   `json:"customName,omitempty"`
	Combos     *[]Combo  `json:"combos,omitempty"`
	Tags       *[]string `json:"tags,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
	IsFavorite *bool     `json:"is_favorite,omitempty"`
}

// AccountCreate is the body of POST /api/accounts.
type AccountCreate struct {
	TypeID     int64    `json:"type_id"`
	Email      string   `json:"email"`
	Password   string   `json:"password"`
	Country    string   `json:"country,omitempty"`
	CustomName string   `json:"customName,omitempty"`
	Combos     []Combo  `json:"combos"`
	Tags       []string `json:"tags"`
	Notes      string   `json:"notes,omitempty"`
}

// AccountType is a user-defined account category (Google, Steam, ...).
type AccountType struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	LoginURL  string `json:"login_url"`
	SortOrder int    `json:"sort_order"`
}
