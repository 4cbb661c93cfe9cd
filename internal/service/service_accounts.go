package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/accbox/internal/adapter"
	"github.com/MKhiriev/accbox/internal/combo"
	"github.com/MKhiriev/accbox/internal/logger"
	"github.com/MKhiriev/accbox/models"
)

// maxParallelUpdates bounds concurrent PUT requests of one batch.
const maxParallelUpdates = 4

type accountService struct {
	api    adapter.APIAdapter
	logger *logger.Logger
}

// NewAccountService creates an AccountService over api.
func NewAccountService(api adapter.APIAdapter, log *logger.Logger) AccountService {
	return &accountService{api: api, logger: log}
}

func (s *accountService) Load(ctx context.Context) (models.Snapshot, error) {
	var snap models.Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		accounts, err := s.api.ListAccounts(gctx)
		if err != nil {
			return fmt.Errorf("error loading accounts: %w", mapAdapterError(err))
		}
		snap.Accounts = accounts
		return nil
	})
	g.Go(func() error {
		types, err := s.api.ListAccountTypes(gctx)
		if err != nil {
			return fmt.Errorf("error loading account types: %w", mapAdapterError(err))
		}
		slices.SortStableFunc(types, func(a, b models.AccountType) int {
			return cmp.Or(cmp.Compare(a.SortOrder, b.SortOrder), cmp.Compare(a.ID, b.ID))
		})
		snap.Types = types
		return nil
	})
	g.Go(func() error {
		groups, err := s.api.ListPropertyGroups(gctx)
		if err != nil {
			return fmt.Errorf("error loading property groups: %w", mapAdapterError(err))
		}
		snap.Groups = combo.SortGroups(groups)
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.Snapshot{}, err
	}

	s.logger.Debug().
		Int("accounts", len(snap.Accounts)).
		Int("types", len(snap.Types)).
		Int("groups", len(snap.Groups)).
		Msg("snapshot loaded")
	return snap, nil
}

func (s *accountService) BatchApply(ctx context.Context, catalog *combo.Catalog, accounts []models.Account, req BatchRequest) (BatchResult, error) {
	if len(accounts) == 0 || len(req.Values) == 0 {
		return BatchResult{}, ErrNothingSelected
	}

	var result BatchResult
	pending := make([]models.Account, 0, len(accounts))
	for _, a := range accounts {
		var (
			next    []models.Combo
			changed bool
		)
		if req.Remove {
			next, changed = catalog.Remove(a.Combos, req.Values, req.Mode)
		} else {
			next, changed = catalog.Add(a.Combos, req.Values, req.Mode)
		}
		if !changed {
			result.Unchanged++
			continue
		}
		a.Combos = next
		pending = append(pending, a)
	}

	saved, errs := s.saveCombos(ctx, pending)
	result.Updated = saved
	result.Failed = len(pending) - len(saved)

	s.logger.Info().
		Str("mode", req.Mode.String()).
		Bool("remove", req.Remove).
		Int("updated", len(saved)).
		Int("unchanged", result.Unchanged).
		Int("failed", result.Failed).
		Msg("batch combo edit")

	if errs != nil {
		return result, fmt.Errorf("error saving batch edit: %w", errs)
	}
	return result, nil
}

func (s *accountService) CleanupInvalid(ctx context.Context, catalog *combo.Catalog, accounts []models.Account) (CleanupResult, error) {
	var (
		result  CleanupResult
		pending []models.Account
		removed = make(map[int64]int)
	)
	for _, a := range accounts {
		next, n := catalog.RemoveInvalid(a.Combos)
		if n == 0 {
			continue
		}
		a.Combos = next
		removed[a.ID] = n
		pending = append(pending, a)
	}
	if len(pending) == 0 {
		return result, nil
	}

	saved, errs := s.saveCombos(ctx, pending)
	result.Updated = saved
	result.Failed = len(pending) - len(saved)
	for _, a := range saved {
		result.Removed += removed[a.ID]
	}

	s.logger.Info().
		Int("accounts", len(saved)).
		Int("combos_removed", result.Removed).
		Int("failed", result.Failed).
		Msg("invalid combos cleaned up")

	if errs != nil {
		return result, fmt.Errorf("error saving cleanup: %w", errs)
	}
	return result, nil
}

// saveCombos persists the combos of accounts and returns the ones the
// server accepted, in input order, plus the joined errors of the rest.
func (s *accountService) saveCombos(ctx context.Context, accounts []models.Account) ([]models.Account, error) {
	errs := make([]error, len(accounts))

	var g errgroup.Group
	g.SetLimit(maxParallelUpdates)
	for i, a := range accounts {
		g.Go(func() error {
			combos := a.Combos
			if err := s.api.UpdateAccount(ctx, a.ID, models.AccountUpdate{Combos: &combos}); err != nil {
				s.logger.Error().Err(err).Int64("account_id", a.ID).Msg("failed to save combos")
				errs[i] = fmt.Errorf("account %d: %w", a.ID, mapAdapterError(err))
			}
			return nil
		})
	}
	_ = g.Wait()

	saved := make([]models.Account, 0, len(accounts))
	for i, a := range accounts {
		if errs[i] == nil {
			saved = append(saved, a)
		}
	}
	return saved, errors.Join(errs...)
}

func (s *accountService) ToggleFavorite(ctx context.Context, id int64) (bool, error) {
	fav, err := s.api.ToggleFavorite(ctx, id)
	if err != nil {
		return false, fmt.Errorf("error toggling favorite: %w", mapAdapterError(err))
	}
	return fav, nil
}

func (s *accountService) RecordUse(ctx context.Context, id int64) error {
	if err := s.api.RecordUse(ctx, id); err != nil {
		return fmt.Errorf("error recording use: %w", mapAdapterError(err))
	}
	return nil
}

func (s *accountService) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteAccount(ctx, id); err != nil {
		return fmt.Errorf("error deleting account: %w", mapAdapterError(err))
	}
	s.logger.Info().Int64("account_id", id).Msg("account deleted")
	return nil
}
