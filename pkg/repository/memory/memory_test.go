package memory_test

import (
	"testing"

	"github.com/remedyhq/remedy/pkg/domain/interfaces"
	"github.com/remedyhq/remedy/pkg/repository/memory"
	"github.com/remedyhq/remedy/pkg/repository/testhelper"
)

func TestScanRepository(t *testing.T) {
	testhelper.RunScanRepositoryTests(t, func(t *testing.T) interfaces.ScanRepository {
		return memory.New()
	})
}
