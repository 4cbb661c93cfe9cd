package tui

import (
	"context"

	"github.com/MKhiriev/accbox/internal/popup"
	"github.com/MKhiriev/accbox/models"
)

// PopupController is the part of [popup.Manager] the list screen drives.
type PopupController interface {
	Open(ctx context.Context, account models.Account) error
	Close()
	Current() popup.Frame
}

// Copier is the part of [clipboard.Manager] the list screen drives.
type Copier interface {
	Copy(text string) error
	CopySecret(text string) error
}
