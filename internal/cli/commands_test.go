package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go-shop-sync/internal/catalog"
	"go-shop-sync/internal/mockbackend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalogCSV = `productId,name,ingredients,category
5,Apple,,Fruit
7,Pear,,Fruit
9,Milk,"milk/vitamin d",Dairy
11,Banana,,Fruit
`

func setupBackend(t *testing.T) *mockbackend.Backend {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCatalogCSV), 0o600))

	snapshot, err := catalog.LoadFile(path)
	require.NoError(t, err)

	backend := mockbackend.New(snapshot, "user1")
	srv := httptest.NewServer(backend.Router())
	t.Cleanup(srv.Close)

	t.Setenv("SHOP_API_BASE_URL", srv.URL)
	t.Setenv("SHOP_USER_ID", "user1")
	t.Setenv("SHOP_CATALOG_PATH", path)
	t.Setenv("SHOP_LOG_LEVEL", "error")
	return backend
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func TestBrowseCommand(t *testing.T) {
	setupBackend(t)

	out, err := execute(t, "browse")
	require.NoError(t, err)
	assert.Contains(t, out, "categories: Fruit | Dairy")
	assert.Contains(t, out, "== Fruit")
	assert.Contains(t, out, "[9] Milk")

	out, err = execute(t, "browse", "mil")
	require.NoError(t, err)
	assert.Contains(t, out, "[9] Milk")
	assert.NotContains(t, out, "Apple")
	assert.NotContains(t, out, "categories:")
}

func TestCategoryCommand(t *testing.T) {
	setupBackend(t)

	out, err := execute(t, "category", "cat2")
	require.NoError(t, err)
	assert.Contains(t, out, "== Dairy")
	assert.NotContains(t, out, "Banana")

	_, err = execute(t, "category", "cat9")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestBasketCommands(t *testing.T) {
	backend := setupBackend(t)

	out, err := execute(t, "basket", "add", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "1 x [5] Apple")
	assert.Equal(t, []int{5}, backend.BasketRows())

	_, err = execute(t, "basket", "add", "9")
	require.NoError(t, err)

	out, err = execute(t, "basket")
	require.NoError(t, err)
	assert.Contains(t, out, "[9] Milk")
	assert.Contains(t, out, "2 units")

	_, err = execute(t, "basket", "remove", "9")
	require.NoError(t, err)
	assert.Equal(t, []int{5}, backend.BasketRows())

	_, err = execute(t, "basket", "add", "404")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestBasketAddBackendFailure(t *testing.T) {
	backend := setupBackend(t)
	backend.FailRoute(mockbackend.RouteBasketAdd, http.StatusServiceUnavailable)

	_, err := execute(t, "basket", "add", "5")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Empty(t, backend.BasketRows())
}

func TestFavoriteCommands(t *testing.T) {
	backend := setupBackend(t)

	out, err := execute(t, "favorite", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "added to favorites")
	assert.Equal(t, []int{7}, backend.Favorites())

	out, err = execute(t, "favorites")
	require.NoError(t, err)
	assert.Contains(t, out, "[7] Pear")

	out, err = execute(t, "favorite", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "removed from favorites")
	assert.Empty(t, backend.Favorites())
}

func TestPurchaseCommand(t *testing.T) {
	backend := setupBackend(t)

	_, err := execute(t, "purchase")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	backend.SeedBasket(5, 5, 9)

	out, err := execute(t, "--format", "json", "purchase")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Items struct {
				Units int `json:"units"`
			} `json:"items"`
			Basket struct {
				Units int `json:"units"`
			} `json:"basket"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 3, resp.Data.Items.Units)
	assert.Zero(t, resp.Data.Basket.Units)
	assert.Empty(t, backend.BasketRows())
}

func TestRecommendCommand(t *testing.T) {
	backend := setupBackend(t)
	backend.SeedBasket(5)

	_, err := execute(t, "click", "9")
	require.NoError(t, err)

	out, err := execute(t, "recommend", "--product", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "for you")
	assert.Contains(t, out, "[9] Milk")
	assert.Contains(t, out, "similar to this product")
}
