// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Snapshot is everything the client needs to render the account list: the
// accounts themselves and the catalogs their references resolve against.
type Snapshot struct {
	Accounts []Account
	Types    []AccountType
	Groups   []PropertyGroup
}

// Account returns the account with the given id.
func (s Snapshot) Account(id int64) (Account, bool) {
	for _, a := range s.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

// Type returns the account type with the given id.
func (s Snapshot) Type(id int64) (AccountType, bool) {
	for _, t := range s.Types {
		if t.ID == id {
			return t, true
		}
	}
	return AccountType{}, false
}
