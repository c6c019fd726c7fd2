package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/paperdoll/internal/api/rest"
	"github.com/cory-johannsen/paperdoll/internal/config"
	"github.com/cory-johannsen/paperdoll/internal/game/catalog/catalogtest"
	"github.com/cory-johannsen/paperdoll/internal/game/inventory"
	"github.com/cory-johannsen/paperdoll/internal/game/presentation"
	"github.com/cory-johannsen/paperdoll/internal/game/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mutation struct {
	State    inventory.State `json:"state"`
	Result   json.RawMessage `json:"result"`
	Reaction string          `json:"reaction"`
}

type conflict struct {
	Error    string `json:"error"`
	Conflict struct {
		ItemID        string `json:"itemId"`
		Slot          string `json:"slot"`
		ConflictIndex int    `json:"conflictIndex"`
		ConflictItem  string `json:"conflictItem"`
	} `json:"conflict"`
	Replacement *inventory.Replacement `json:"replacement"`
}

type rig struct {
	router *gin.Engine
	repo   *session.MemoryRepository
}

// newRig opens slot "alpha" wearing m:upper (eq 0) and m:lower (eq 1) with
// f:upper, use:snack and misc:coin in inventory 0-2.
func newRig(t *testing.T, health rest.HealthFunc, api config.APIConfig) *rig {
	t.Helper()
	reg := catalogtest.Wardrobe()
	repo := session.NewMemoryRepository()
	m := session.NewManager(session.Deps{
		Repo:    repo,
		Catalog: reg,
		Layout:  inventory.DefaultLayout(),
		Loadout: &inventory.StartingLoadout{
			Equipped:  []string{"m:upper", "m:lower"},
			Inventory: []string{"f:upper", "use:snack", "misc:coin"},
		},
		Engine: presentation.NewEngine(presentation.DefaultConfig(), reg),
		Logger: zap.NewNop(),
	})
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	h := rest.NewHandler(m, health, zap.NewNop())
	return &rig{router: rest.NewRouter(ctx, h, api, zap.NewNop()), repo: repo}
}

func defaultRig(t *testing.T) *rig {
	return newRig(t, nil, config.APIConfig{})
}

func (r *rig) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func loc(area inventory.Area, i int) inventory.Location {
	return inventory.Location{Area: area, Index: i}
}

func TestHealthz(t *testing.T) {
	w := defaultRig(t).do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	down := newRig(t, func(context.Context) error { return errors.New("down") }, config.APIConfig{})
	w = down.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestState_SeedsAndEncodesEmptySlotsAsNull(t *testing.T) {
	w := defaultRig(t).do(http.MethodGet, "/api/saves/alpha/state", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"equipped":["m:upper","m:lower",null`)

	st := decode[inventory.State](t, w)
	assert.Equal(t, []string{"f:upper", "use:snack", "misc:coin"}, st.Inventory.Items())
}

func TestState_InvalidSlotIs400(t *testing.T) {
	w := defaultRig(t).do(http.MethodGet, "/api/saves/bad.slot/state", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMove_ConflictThenReplace(t *testing.T) {
	r := defaultRig(t)

	w := r.do(http.MethodPost, "/api/saves/alpha/move", map[string]any{
		"from": loc(inventory.AreaInventory, 0),
		"to":   loc(inventory.AreaEquipped, 2),
	})
	require.Equal(t, http.StatusConflict, w.Code)
	c := decode[conflict](t, w)
	assert.Equal(t, "f:upper", c.Conflict.ItemID)
	assert.Equal(t, "m:upper", c.Conflict.ConflictItem)
	assert.Equal(t, 0, c.Conflict.ConflictIndex)
	require.NotNil(t, c.Replacement)
	assert.Equal(t, inventory.ReplaceEquip, c.Replacement.Kind)

	w = r.do(http.MethodPost, "/api/saves/alpha/replace", map[string]any{"replacement": c.Replacement})
	require.Equal(t, http.StatusOK, w.Code)
	m := decode[mutation](t, w)
	assert.Equal(t, "f:upper", m.State.Equipped[0])
	assert.Equal(t, "m:upper", m.State.Inventory[0])

	w = r.do(http.MethodPost, "/api/saves/alpha/replace", map[string]any{"replacement": c.Replacement})
	assert.Equal(t, http.StatusConflict, w.Code, "replaying a used replacement is stale")
}

func TestMove_Autosaves(t *testing.T) {
	r := defaultRig(t)
	w := r.do(http.MethodPost, "/api/saves/alpha/move", map[string]any{
		"from": loc(inventory.AreaInventory, 2),
		"to":   loc(inventory.AreaWardrobe, 0),
	})
	require.Equal(t, http.StatusOK, w.Code)

	saved, err := r.repo.Load(context.Background(), "alpha")
	require.NoError(t, err)
	assert.Equal(t, "misc:coin", saved.Inventory.Wardrobe[0])
	assert.Equal(t, "", saved.Inventory.Inventory[2])
}

func TestMove_Rejections(t *testing.T) {
	cases := []struct {
		name string
		body any
		want int
	}{
		{"not wearable", map[string]any{"from": loc(inventory.AreaInventory, 2), "to": loc(inventory.AreaEquipped, 2)}, http.StatusUnprocessableEntity},
		{"empty source", map[string]any{"from": loc(inventory.AreaInventory, 9), "to": loc(inventory.AreaEquipped, 2)}, http.StatusUnprocessableEntity},
		{"unknown area", map[string]any{"from": loc("attic", 0), "to": loc(inventory.AreaEquipped, 2)}, http.StatusUnprocessableEntity},
		{"wardrobe past the next row", map[string]any{"from": loc(inventory.AreaInventory, 0), "to": loc(inventory.AreaWardrobe, 1_000_000)}, http.StatusUnprocessableEntity},
		{"wardrobe index overflow", map[string]any{"from": loc(inventory.AreaInventory, 0), "to": loc(inventory.AreaWardrobe, 1<<50)}, http.StatusUnprocessableEntity},
		{"bad json", `{"from":`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := defaultRig(t).do(http.MethodPost, "/api/saves/alpha/move", tc.body)
			assert.Equal(t, tc.want, w.Code, w.Body.String())
		})
	}
}

func TestMove_FarWardrobeIndexLeavesSaveUntouched(t *testing.T) {
	r := defaultRig(t)
	w := r.do(http.MethodPost, "/api/saves/alpha/move", map[string]any{
		"from": loc(inventory.AreaInventory, 0),
		"to":   loc(inventory.AreaWardrobe, 1_000_000),
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	st := decode[inventory.State](t, r.do(http.MethodGet, "/api/saves/alpha/state", nil))
	assert.Len(t, st.Wardrobe, 12)
	assert.Equal(t, "f:upper", st.Inventory[0])
}

func TestReplace_ForgedSwapIsStale(t *testing.T) {
	r := defaultRig(t)
	forged := inventory.Replacement{
		Kind:          inventory.ReplaceViaSwap,
		Source:        loc(inventory.AreaEquipped, 0),
		SourceItem:    "m:upper",
		Target:        loc(inventory.AreaInventory, 0),
		TargetItem:    "f:upper",
		ConflictIndex: 0,
		ConflictItem:  "m:upper",
	}
	w := r.do(http.MethodPost, "/api/saves/alpha/replace", map[string]any{"replacement": forged})
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	st := decode[inventory.State](t, r.do(http.MethodGet, "/api/saves/alpha/state", nil))
	assert.Equal(t, []string{"m:upper", "m:lower"}, st.Equipped.Items())
	assert.Equal(t, []string{"f:upper", "use:snack", "misc:coin"}, st.Inventory.Items())
}

func TestReplace_MissingBodyIs400(t *testing.T) {
	w := defaultRig(t).do(http.MethodPost, "/api/saves/alpha/replace", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestItems_UseAppliesEffects(t *testing.T) {
	r := defaultRig(t)
	w := r.do(http.MethodPost, "/api/saves/alpha/items/use", loc(inventory.AreaInventory, 1))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	m := decode[mutation](t, w)
	assert.Equal(t, "", m.State.Inventory[1])
	var res inventory.UseResult
	require.NoError(t, json.Unmarshal(m.Result, &res))
	assert.Equal(t, "use:snack", res.ItemID)

	saved, err := r.repo.Load(context.Background(), "alpha")
	require.NoError(t, err)
	assert.Equal(t, 11, saved.Stats.Status["confidence"])
}

func TestItems_WearAndUnknownAction(t *testing.T) {
	r := defaultRig(t)
	w := r.do(http.MethodPost, "/api/saves/alpha/items/wear", loc(inventory.AreaInventory, 2))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = r.do(http.MethodPost, "/api/saves/alpha/items/polish", loc(inventory.AreaInventory, 0))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItems_ToWardrobe(t *testing.T) {
	r := defaultRig(t)
	w := r.do(http.MethodPost, "/api/saves/alpha/items/to-wardrobe", loc(inventory.AreaInventory, 0))
	require.Equal(t, http.StatusOK, w.Code)
	m := decode[mutation](t, w)
	assert.Contains(t, m.State.Wardrobe.Items(), "f:upper")
}

func TestUnequip(t *testing.T) {
	r := defaultRig(t)
	w := r.do(http.MethodPost, "/api/saves/alpha/unequip/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	m := decode[mutation](t, w)
	assert.Equal(t, "", m.State.Equipped[1])
	assert.Equal(t, "m:lower", m.State.Inventory[3])

	w = r.do(http.MethodPost, "/api/saves/alpha/unequip/0?fallback=wardrobe", nil)
	require.Equal(t, http.StatusOK, w.Code)
	m = decode[mutation](t, w)
	assert.Contains(t, m.State.Wardrobe.Items(), "m:upper")

	w = r.do(http.MethodPost, "/api/saves/alpha/unequip/x", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = r.do(http.MethodPost, "/api/saves/alpha/unequip/0", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "slot 0 is now empty")
}

func TestBulk(t *testing.T) {
	r := defaultRig(t)
	w := r.do(http.MethodPost, "/api/saves/alpha/bulk/unequip-all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	m := decode[mutation](t, w)
	assert.Empty(t, m.State.Equipped.Items())

	w = r.do(http.MethodPost, "/api/saves/alpha/bulk/inventory-to-wardrobe", nil)
	require.Equal(t, http.StatusOK, w.Code)
	m = decode[mutation](t, w)
	assert.JSONEq(t, `{"moved":5}`, string(m.Result))
	assert.Empty(t, m.State.Inventory.Items())

	w = r.do(http.MethodPost, "/api/saves/alpha/bulk/shred", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFilter(t *testing.T) {
	r := defaultRig(t)
	w := r.do(http.MethodPut, "/api/saves/alpha/filter", inventory.Filter{Category: []string{"clothes"}})
	require.Equal(t, http.StatusOK, w.Code)
	m := decode[mutation](t, w)
	assert.Equal(t, []string{"clothes"}, m.State.Filter.Category)

	w = r.do(http.MethodDelete, "/api/saves/alpha/filter", nil)
	require.Equal(t, http.StatusOK, w.Code)
	m = decode[mutation](t, w)
	assert.False(t, m.State.Filter.Active())
}

func TestSets_Lifecycle(t *testing.T) {
	r := defaultRig(t)
	w := r.do(http.MethodPost, "/api/saves/alpha/sets", map[string]string{"name": "Work"})
	require.Equal(t, http.StatusOK, w.Code)
	var set inventory.ItemSet
	require.NoError(t, json.Unmarshal(decode[mutation](t, w).Result, &set))
	assert.Equal(t, "Work", set.Name)
	assert.ElementsMatch(t, []string{"m:upper", "m:lower"}, set.Items)
	base := "/api/saves/alpha/sets/" + set.ID

	w = r.do(http.MethodGet, base+"/preview", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"readLabel"`)

	w = r.do(http.MethodPatch, base, map[string]string{"name": "Office"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Office", decode[mutation](t, w).State.Sets[0].Name)

	require.Equal(t, http.StatusOK, r.do(http.MethodPost, "/api/saves/alpha/bulk/unequip-all", nil).Code)
	w = r.do(http.MethodPost, base+"/apply", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.ElementsMatch(t, []string{"m:upper", "m:lower"}, decode[mutation](t, w).State.Equipped.Items())

	require.Equal(t, http.StatusOK, r.do(http.MethodDelete, base, nil).Code)
	assert.Equal(t, http.StatusNotFound, r.do(http.MethodGet, base+"/preview", nil).Code)
	assert.Equal(t, http.StatusNotFound, r.do(http.MethodPost, base+"/apply", nil).Code)
}

func TestSets_CreateWithNothingWorn(t *testing.T) {
	r := defaultRig(t)
	require.Equal(t, http.StatusOK, r.do(http.MethodPost, "/api/saves/alpha/bulk/unequip-all", nil).Code)
	w := r.do(http.MethodPost, "/api/saves/alpha/sets", map[string]string{"name": "Nothing"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPresentation(t *testing.T) {
	r := defaultRig(t)
	w := r.do(http.MethodGet, "/api/saves/alpha/presentation?public=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[struct {
		Result   presentation.Result           `json:"result"`
		Outfit   presentation.OutfitAssessment `json:"outfit"`
		ReadText string                        `json:"readText"`
	}](t, w)
	assert.False(t, body.Result.IsExposedPublic)
	assert.Equal(t, presentation.LabelMale, body.Result.ReadLabel)
	assert.NotEmpty(t, body.ReadText)

	require.Equal(t, http.StatusOK, r.do(http.MethodPost, "/api/saves/alpha/bulk/unequip-all", nil).Code)
	w = r.do(http.MethodGet, "/api/saves/alpha/presentation", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"readLabel":"inappropriate"`, "public persists on the session")

	w = r.do(http.MethodGet, "/api/saves/alpha/presentation?public=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRateLimit(t *testing.T) {
	r := newRig(t, nil, config.APIConfig{RateLimitRPS: 0.001, RateLimitBurst: 1})
	assert.Equal(t, http.StatusOK, r.do(http.MethodGet, "/healthz", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, r.do(http.MethodGet, "/healthz", nil).Code)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(rest.Recovery(zap.NewNop()))
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}
