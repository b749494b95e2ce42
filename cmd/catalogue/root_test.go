package main

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogue/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd(&out)
	cmd.SetErr(io.Discard)
	base := []string{"--seed", "--env-file", filepath.Join(t.TempDir(), "absent.env")}
	cmd.SetArgs(append(base, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCategoryGet(t *testing.T) {
	out, err := execute(t, "category", "get", "c-kite")
	require.NoError(t, err)

	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "Kiteboarding", v["title"])
	assert.Equal(t, true, v["active"])
}

func TestCategoryGet_Unauthorized(t *testing.T) {
	_, err := execute(t, "category", "get", "c-boards")
	require.Error(t, err)
	assert.True(t, errors.IsUnauthorized(err))

	out, err := execute(t, "--grant", "VIEW_INACTIVE_CATEGORY", "category", "get", "c-boards")
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "Boards"`)
}

func TestCategoryList(t *testing.T) {
	out, err := execute(t, "category", "list", "--parent", "c-kite")
	require.NoError(t, err)

	var v []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	require.Len(t, v, 1)
	assert.Equal(t, "c-kites", v[0]["id"])
}

func TestReviewGet_ResolvesRelations(t *testing.T) {
	out, err := execute(t, "review", "get", "r-active")
	require.NoError(t, err)

	var v struct {
		ID     string `json:"id"`
		Active bool   `json:"active"`
		User   *struct {
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
		} `json:"user"`
		Product *struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"product"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.True(t, v.Active)
	require.NotNil(t, v.User)
	assert.Equal(t, "Marc", v.User.FirstName)
	require.NotNil(t, v.Product)
	assert.Equal(t, "p-core", v.Product.ID)

	out, err = execute(t, "review", "get", "r-orphan")
	require.NoError(t, err)
	assert.Contains(t, out, `"user": null`)
	assert.Contains(t, out, `"product": null`)
}

func TestProductList_Paginated(t *testing.T) {
	// 匿名调用只能看到 p-core 与 p-wake
	out, err := execute(t, "product", "list", "--offset", "1", "--limit", "2")
	require.NoError(t, err)

	var v []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	require.Len(t, v, 1)
	assert.Equal(t, "p-wake", v[0]["id"])

	_, err = execute(t, "product", "list", "--limit=-1")
	assert.True(t, errors.IsInvalidInput(err))
}

func TestProductGet_WithStock(t *testing.T) {
	out, err := execute(t, "product", "get", "p-core")
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "Naish"`)
	assert.Contains(t, out, `"stockStatus": 0`)
}

func TestConfigCmd(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "driver: sqlite")
	assert.Contains(t, out, "seed: true")
}
