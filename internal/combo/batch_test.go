package combo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/accbox/models"
)

// TestAdd_CompoundIsIdempotent covers two bare accounts receiving [5, 2]
// twice.
func TestAdd_CompoundIsIdempotent(t *testing.T) {
	cat := newTestCatalog()

	for _, start := range [][]models.Combo{nil, {}} {
		got, changed := cat.Add(start, []models.ValueID{5, 2}, ModeCompound)
		assert.True(t, changed)
		assert.Len(t, got, 1)
		assert.True(t, cat.Equal(got[0], models.Combo{5, 2}))
		assert.Equal(t, models.Combo{2, 5}, got[0], "stored normalized")

		again, changed := cat.Add(got, []models.ValueID{2, 5}, ModeCompound)
		assert.False(t, changed)
		assert.Equal(t, got, again)
	}
}

func TestAdd_CompoundDetectsUnnormalizedDuplicate(t *testing.T) {
	cat := newTestCatalog()
	start := []models.Combo{{5, 2}}

	got, changed := cat.Add(start, []models.ValueID{2, 5, 5}, ModeCompound)

	assert.False(t, changed)
	assert.Equal(t, start, got)
}

func TestAdd_Independent(t *testing.T) {
	cat := newTestCatalog()
	start := []models.Combo{{5, 2}}

	got, changed := cat.Add(start, []models.ValueID{2, 7, 1}, ModeIndependent)

	assert.True(t, changed)
	assert.Equal(t, []models.Combo{{5, 2}, {7}, {1}}, got)

	_, changed = cat.Add(got, []models.ValueID{7, 1, 5}, ModeIndependent)
	assert.False(t, changed)
}

func TestAdd_EmptySelection(t *testing.T) {
	cat := newTestCatalog()
	start := []models.Combo{{1}}

	for _, mode := range []Mode{ModeCompound, ModeIndependent} {
		got, changed := cat.Add(start, nil, mode)
		assert.False(t, changed)
		assert.Equal(t, start, got)
	}
}

func TestRemove_IndependentKeepsMultiValueCombos(t *testing.T) {
	cat := newTestCatalog()
	start := []models.Combo{{5, 2}, {7}}

	got, changed := cat.Remove(start, []models.ValueID{7}, ModeIndependent)

	assert.True(t, changed)
	assert.Equal(t, []models.Combo{{5, 2}}, got)

	got, changed = cat.Remove(got, []models.ValueID{5}, ModeIndependent)
	assert.False(t, changed)
	assert.Equal(t, []models.Combo{{5, 2}}, got)
}

func TestRemove_CompoundExactSetOnly(t *testing.T) {
	cat := newTestCatalog()
	start := []models.Combo{{5, 2}, {2}, {2, 5, 7}, {2, 5}}

	got, changed := cat.Remove(start, []models.ValueID{2, 5}, ModeCompound)

	assert.True(t, changed)
	assert.Equal(t, []models.Combo{{2}, {2, 5, 7}}, got)
}

func TestRemove_DoesNotMutateInput(t *testing.T) {
	cat := newTestCatalog()
	start := []models.Combo{{5, 2}, {7}}

	_, _ = cat.Remove(start, []models.ValueID{7}, ModeIndependent)
	_, _ = cat.Add(start, []models.ValueID{1}, ModeIndependent)

	assert.Equal(t, []models.Combo{{5, 2}, {7}}, start)
}

func TestRemoveInvalid(t *testing.T) {
	cat := newTestCatalog()
	start := []models.Combo{{1, 5}, {404}, {}, {7, 405}, {8}}

	got, removed := cat.RemoveInvalid(start)

	assert.Equal(t, 3, removed)
	assert.Equal(t, []models.Combo{{1, 5}, {8}}, got)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "compound", ModeCompound.String())
	assert.Equal(t, "independent", ModeIndependent.String())
}
