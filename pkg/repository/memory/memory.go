package memory

import (
	"github.com/remedyhq/remedy/pkg/domain/interfaces"
	"github.com/remedyhq/remedy/pkg/domain/types"
)

// New creates a new in-memory repository
func New() interfaces.ScanRepository {
	return &scanRepository{
		scans:    make(map[types.ScanID]*scanData),
		findings: make(map[types.FindingID]*findingRef),
	}
}
