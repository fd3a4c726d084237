package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/remedyhq/remedy/pkg/domain/interfaces"
	"github.com/remedyhq/remedy/pkg/repository/sqlite"
	"github.com/remedyhq/remedy/pkg/repository/testhelper"
)

func TestScanRepository(t *testing.T) {
	testhelper.RunScanRepositoryTests(t, func(t *testing.T) interfaces.ScanRepository {
		dbPath := filepath.Join(t.TempDir(), "remedy.db")
		repo, err := sqlite.New(context.Background(), dbPath)
		gt.NoError(t, err)
		t.Cleanup(func() {
			if err := repo.Close(); err != nil {
				t.Log("failed to close sqlite repository:", err)
			}
		})
		return repo
	})
}
