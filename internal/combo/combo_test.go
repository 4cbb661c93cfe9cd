package combo

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/accbox/models"
)

// testGroups: Status {1 ok, 2 limited, 3 banned}, Backup {5 yes, 6 no (hidden)},
// Region {7 eu, 8 us (hidden)}.
func testGroups() []models.PropertyGroup {
	return []models.PropertyGroup{
		{ID: 10, Name: "Status", SortOrder: 0, Values: []models.PropertyValue{
			{ID: 1, GroupID: 10, Name: "ok", Color: "#22c55e"},
			{ID: 2, GroupID: 10, Name: "limited", Color: "#f59e0b"},
			{ID: 3, GroupID: 10, Name: "banned", Color: "#ef4444"},
		}},
		{ID: 20, Name: "Backup", SortOrder: 1, Values: []models.PropertyValue{
			{ID: 5, GroupID: 20, Name: "backup", Color: "#3b82f6"},
			{ID: 6, GroupID: 20, Name: "no-backup", Color: "#64748b", Hidden: true},
		}},
		{ID: 30, Name: "Region", SortOrder: 2, Values: []models.PropertyValue{
			{ID: 7, GroupID: 30, Name: "eu", Color: "#a855f7"},
			{ID: 8, GroupID: 30, Name: "us", Color: "#ec4899", Hidden: true},
		}},
	}
}

func newTestCatalog() *Catalog { return NewCatalog(testGroups()) }

func TestNormalize(t *testing.T) {
	cat := newTestCatalog()

	tests := []struct {
		name  string
		combo models.Combo
		want  models.Combo
	}{
		{name: "group order wins over click order", combo: models.Combo{5, 2}, want: models.Combo{2, 5}},
		{name: "value order within group", combo: models.Combo{8, 7, 3, 1}, want: models.Combo{1, 3, 7, 8}},
		{name: "unknown last in original order", combo: models.Combo{99, 7, 42, 1}, want: models.Combo{1, 7, 99, 42}},
		{name: "empty", combo: models.Combo{}, want: models.Combo{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.combo.Clone()
			assert.Equal(t, tt.want, cat.Normalize(tt.combo))
			assert.Equal(t, input, tt.combo, "input is not modified")
		})
	}
}

func randomCombo(r *rand.Rand) models.Combo {
	pool := []models.ValueID{1, 2, 3, 5, 6, 7, 8, 42, 99}
	r.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return models.Combo(pool[:r.IntN(len(pool))+1]).Clone()
}

func TestNormalize_Idempotent(t *testing.T) {
	cat := newTestCatalog()
	r := rand.New(rand.NewPCG(1, 2))

	for range 200 {
		c := randomCombo(r)
		once := cat.Normalize(c)
		assert.Equal(t, once, cat.Normalize(once), "combo %v", c)
	}
}

func TestEqual_SymmetricAndPermutationInvariant(t *testing.T) {
	cat := newTestCatalog()
	r := rand.New(rand.NewPCG(3, 4))

	for range 200 {
		a, b := randomCombo(r), randomCombo(r)
		assert.Equal(t, cat.Equal(a, b), cat.Equal(b, a), "%v vs %v", a, b)

		known := make(models.Combo, 0, len(a))
		for _, id := range a {
			if _, ok := cat.Value(id); ok {
				known = append(known, id)
			}
		}
		perm := known.Clone()
		r.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
		assert.True(t, cat.Equal(known, perm), "%v vs %v", known, perm)
	}
}

func TestEqual(t *testing.T) {
	cat := newTestCatalog()

	assert.True(t, cat.Equal(models.Combo{5, 2}, models.Combo{2, 5}))
	assert.False(t, cat.Equal(models.Combo{5, 2}, models.Combo{2}))
	assert.False(t, cat.Equal(models.Combo{5, 2}, models.Combo{2, 6}))
	assert.False(t, cat.Equal(models.Combo{5, 5}, models.Combo{5}))
	assert.True(t, cat.Equal(models.Combo{}, models.Combo{}))
}

func TestDisplay(t *testing.T) {
	cat := newTestCatalog()

	tests := []struct {
		name  string
		combo models.Combo
		want  Display
	}{
		{
			name:  "first group color and visible names",
			combo: models.Combo{5, 2},
			want:  Display{Color: "#f59e0b", Text: "limited backup"},
		},
		{
			name:  "hidden names skipped but color kept",
			combo: models.Combo{7, 6},
			want:  Display{Color: "#64748b", Text: "eu"},
		},
		{
			name:  "all hidden falls back to first name",
			combo: models.Combo{8, 6},
			want:  Display{Color: "#64748b", Text: "no-backup"},
		},
		{
			name:  "dangling identifier is invalid",
			combo: models.Combo{1, 404},
			want:  Display{Color: "#22c55e", Text: "ok", Invalid: true, Missing: []models.ValueID{404}},
		},
		{
			name:  "nothing resolves",
			combo: models.Combo{404},
			want:  Display{Color: DefaultColor, Text: "", Invalid: true, Missing: []models.ValueID{404}},
		},
		{
			name:  "empty combo",
			combo: models.Combo{},
			want:  Display{Color: DefaultColor, Invalid: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cat.Display(tt.combo))
		})
	}
}

func TestValid(t *testing.T) {
	cat := newTestCatalog()
	assert.True(t, cat.Valid(models.Combo{1, 5}))
	assert.False(t, cat.Valid(models.Combo{1, 404}))
	assert.False(t, cat.Valid(nil))
}

func TestSortGroups(t *testing.T) {
	groups := []models.PropertyGroup{
		{ID: 3, SortOrder: 1},
		{ID: 2, SortOrder: 0, Values: []models.PropertyValue{{ID: 9, SortOrder: 2}, {ID: 4, SortOrder: 1}, {ID: 1, SortOrder: 1}}},
		{ID: 1, SortOrder: 1},
	}

	sorted := SortGroups(groups)

	require.Len(t, sorted, 3)
	assert.Equal(t, []int64{2, 1, 3}, []int64{sorted[0].ID, sorted[1].ID, sorted[2].ID})
	v := sorted[0].Values
	assert.Equal(t, []models.ValueID{1, 4, 9}, []models.ValueID{v[0].ID, v[1].ID, v[2].ID})
	assert.Equal(t, models.ValueID(9), groups[1].Values[0].ID, "input untouched")
}

func TestCatalogLookups(t *testing.T) {
	cat := newTestCatalog()

	g, ok := cat.GroupOf(6)
	require.True(t, ok)
	assert.Equal(t, "Backup", g.Name)

	_, ok = cat.GroupOf(404)
	assert.False(t, ok)

	assert.True(t, cat.HasGroup(30))
	assert.False(t, cat.HasGroup(31))
	assert.Equal(t, []models.ValueID{7, 8}, cat.GroupValues(30))
	assert.Len(t, cat.Groups(), 3)
}

func TestPredicates(t *testing.T) {
	cat := newTestCatalog()
	acc := models.Account{TypeID: 4, Combos: []models.Combo{{5, 2}, {7}}}
	bare := models.Account{TypeID: 5}

	assert.True(t, HasValue(acc, 2))
	assert.True(t, HasValue(acc, 7))
	assert.False(t, HasValue(acc, 1))
	assert.True(t, LacksValue(acc, 1))
	assert.True(t, LacksValue(bare, 2))

	assert.True(t, HasType(acc, 4))
	assert.False(t, HasType(bare, 4))

	assert.False(t, cat.LacksGroup(acc, 10))
	assert.False(t, cat.LacksGroup(acc, 30))
	assert.True(t, cat.LacksGroup(models.Account{Combos: []models.Combo{{1}}}, 20))
	assert.True(t, cat.LacksGroup(bare, 10))

	assert.False(t, cat.HasInvalid(acc))
	assert.True(t, cat.HasInvalid(models.Account{Combos: []models.Combo{{1}, {404}}}))
}
