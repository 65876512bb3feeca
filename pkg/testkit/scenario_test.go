package testkit_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/fruitfuel/app/store"
	"github.com/shashiranjanraj/fruitfuel/database/seeders"
	"github.com/shashiranjanraj/fruitfuel/pkg/logger"
	"github.com/shashiranjanraj/fruitfuel/pkg/testkit"
)

func newStore(t *testing.T) testkit.Factory {
	return func(s *testkit.Scenario) testkit.Dispatcher {
		initial, err := seeders.InitialState("")
		require.NoError(t, err)
		return store.New(initial,
			store.WithLogger(logger.Discard()),
			store.WithReducer(store.Reducer{EnforceStock: s.EnforceStock}),
		)
	}
}

// TestRunDir_Sessions replays every scripted session in testdata/.
func TestRunDir_Sessions(t *testing.T) {
	testkit.RunDir(t, newStore(t), "testdata")
}

func TestRun_SingleFile(t *testing.T) {
	testkit.Run(t, newStore(t), filepath.Join("testdata", "weekly_boost_totals.json"))
}

func TestLoadScenario_Validation(t *testing.T) {
	dir := t.TempDir()

	noName := filepath.Join(dir, "no_name.json")
	require.NoError(t, os.WriteFile(noName, []byte(`{"steps": []}`), 0o600))
	_, err := testkit.LoadScenario(noName)
	assert.ErrorContains(t, err, "name is required")

	badKind := filepath.Join(dir, "bad_kind.json")
	require.NoError(t, os.WriteFile(badKind, []byte(`{
		"name": "x",
		"steps": [{"action": "clear_cart", "expectError": "teapot"}]
	}`), 0o600))
	_, err = testkit.LoadScenario(badKind)
	assert.ErrorContains(t, err, "teapot")
}

func TestReplay_StopsOnUndecodablePayload(t *testing.T) {
	initial, err := seeders.InitialState("")
	require.NoError(t, err)
	st := store.New(initial, store.WithLogger(logger.Discard()))

	s := &testkit.Scenario{
		Name: "non-numeric quantity",
		Steps: []testkit.Step{
			{Action: store.KindAddToCart, Payload: []byte(`{"product": {"id": "1"}}`)},
			{Action: store.KindUpdateCartQuantity, Payload: []byte(`{"productId": "1", "quantity": "lots"}`)},
			{Action: store.KindClearCart},
		},
	}

	results, err := testkit.Replay(st, s)
	require.Error(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, 1, st.State().Cart[0].Quantity)
}

func TestLoadAllFromDir(t *testing.T) {
	scenarios, errs := testkit.LoadAllFromDir("testdata")
	assert.Empty(t, errs)
	assert.NotEmpty(t, scenarios)

	_, errs = testkit.LoadAllFromDir(t.TempDir())
	assert.Len(t, errs, 1)
}
