package migrate

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func TestUp(t *testing.T) {
	db, err := sql.Open("sqlite3", "file:"+filepath.Join(t.TempDir(), "m.sqlite"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Up(db))
	// second run has nothing to apply
	require.NoError(t, Up(db))

	for _, name := range []string{"users", "foods", "food_logs"} {
		var got string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&got)
		require.NoError(t, err, name)
		require.Equal(t, name, got)
	}
}
