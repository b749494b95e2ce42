package basic

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	core "catalogue/data/db"
)

func TestNew_MemorySQLite(t *testing.T) {
	ctx := context.Background()
	d, err := New(ctx, core.DBConfig{DSN: ":memory:", MaxOpenConns: 4, ConnMaxLifetime: 60})
	require.NoError(t, err)
	defer d.Close()

	assert.Equal(t, "sqlite", d.GetDialectName())
	require.NoError(t, d.Ping(ctx))

	// 单连接：建表后其他查询能看到同一个库
	require.NoError(t, d.ExecScript(ctx, `
		CREATE TABLE oxuser (oxid TEXT PRIMARY KEY, oxfname TEXT);
		INSERT INTO oxuser VALUES ('u1', 'Marc');
		INSERT INTO oxuser VALUES ('u2', 'Tina');
	`))

	rows, err := d.Query(ctx, "SELECT oxfname FROM oxuser WHERE oxid = ?", "u2")
	require.NoError(t, err)
	one, err := core.FetchAll(rows)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "Tina", one[0].String("oxfname"))

	rows, err = d.Query(ctx, "SELECT * FROM oxuser ORDER BY oxid")
	require.NoError(t, err)
	all, err := core.FetchAll(rows)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Marc", all[0].String("oxfname"))
}

func TestExecScript_ReportsStatement(t *testing.T) {
	ctx := context.Background()
	d, err := New(ctx, core.DBConfig{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	defer d.Close()

	err = d.ExecScript(ctx, "CREATE TABLE a (x INTEGER); INSERT INTO missing VALUES (1)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INSERT INTO missing")
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(context.Background(), core.DBConfig{Driver: "nosuchdriver"})
	assert.Error(t, err)
}

func TestWrap(t *testing.T) {
	raw, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	d := Wrap(raw, "sqlite3")
	defer d.Close()

	assert.Equal(t, "sqlite3", d.GetDialectName())
	_, err = d.Exec(context.Background(), "CREATE TABLE t (x INTEGER)")
	assert.NoError(t, err)
}

func TestSplitStatements(t *testing.T) {
	assert.Equal(t, []string{"SELECT 1", "SELECT 2"}, splitStatements(" SELECT 1 ;\n; SELECT 2;"))
}
