package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"catalogue/auth"
	"catalogue/data/db"
	"catalogue/data/db/basic"
	"catalogue/data/filter"
	"catalogue/data/fixture"
	"catalogue/data/repository"
	"catalogue/domain/model"
)

// 演示数据中 p-board 的激活时间窗口为 2021 全年
var june2021 model.Clock = func() time.Time {
	return time.Date(2021, 6, 1, 10, 0, 0, 0, time.UTC)
}

var allPermissions = auth.NewStatic(
	PermissionViewInactiveCategory,
	PermissionViewInactiveManufacturer,
	PermissionViewInactiveProduct,
	PermissionViewInactiveReview,
)

func newRepository(t *testing.T) *repository.Repository {
	t.Helper()
	ctx := context.Background()
	database, err := basic.New(ctx, db.DBConfig{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	require.NoError(t, fixture.Load(ctx, database))
	return repository.New(database)
}

func filterAll() filter.List { return filter.NewList() }

func ids[T interface{ ID() string }](items []T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID()
	}
	return out
}
