package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/remedyhq/remedy/pkg/domain/model"
	"github.com/remedyhq/remedy/pkg/domain/types"
	"github.com/remedyhq/remedy/pkg/repository"
)

const defaultListLimit = 20

type scanData struct {
	scan     *model.Scan
	findings []*model.Finding
}

type findingRef struct {
	finding *model.Finding
}

type scanRepository struct {
	mu       sync.RWMutex
	scans    map[types.ScanID]*scanData
	findings map[types.FindingID]*findingRef
}

func (r *scanRepository) CreateScan(ctx context.Context, scan *model.Scan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.scans[scan.ID]; exists {
		return goerr.Wrap(repository.ErrAlreadyExists, "scan already exists",
			goerr.V("scanID", scan.ID),
		)
	}

	r.scans[scan.ID] = &scanData{scan: copyScan(scan)}

	return nil
}

func (r *scanRepository) GetScan(ctx context.Context, id types.ScanID) (*model.Scan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.scans[id]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "scan not found",
			goerr.V("scanID", id),
		)
	}

	return copyScan(data.scan), nil
}

func (r *scanRepository) ListScans(ctx context.Context, repo string, limit int) ([]*model.Scan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 {
		limit = defaultListLimit
	}

	var scans []*model.Scan
	for _, data := range r.scans {
		if repo == "" || data.scan.Repo == repo {
			scans = append(scans, copyScan(data.scan))
		}
	}

	sort.Slice(scans, func(i, j int) bool {
		return scans[i].CreatedAt.After(scans[j].CreatedAt)
	})

	if len(scans) > limit {
		scans = scans[:limit]
	}

	return scans, nil
}

func (r *scanRepository) UpdateScanStatus(ctx context.Context, id types.ScanID, status types.ScanStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, exists := r.scans[id]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "scan not found",
			goerr.V("scanID", id),
		)
	}

	if !data.scan.Status.CanAdvance(status) {
		return goerr.Wrap(types.ErrInvalidTransition, "scan status may only advance forward",
			goerr.V("scanID", id),
			goerr.V("from", data.scan.Status),
			goerr.V("to", status),
		)
	}

	data.scan.Status = status

	return nil
}

func (r *scanRepository) InsertFindings(ctx context.Context, scanID types.ScanID, findings []*model.Finding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, exists := r.scans[scanID]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "scan not found",
			goerr.V("scanID", scanID),
		)
	}

	if data.scan.Status != types.ScanStatusPending {
		return goerr.Wrap(types.ErrInvalidTransition, "scan was already ingested",
			goerr.V("scanID", scanID),
			goerr.V("status", data.scan.Status),
		)
	}

	// Findings and the status transition are applied under the same lock so
	// the write is all-or-nothing.
	for _, f := range findings {
		cp := copyFinding(f)
		data.findings = append(data.findings, cp)
		r.findings[cp.ID] = &findingRef{finding: cp}
	}
	data.scan.Status = types.ScanStatusProcessing

	return nil
}

func (r *scanRepository) GetFinding(ctx context.Context, id types.FindingID) (*model.Finding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ref, exists := r.findings[id]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "finding not found",
			goerr.V("findingID", id),
		)
	}

	return copyFinding(ref.finding), nil
}

func (r *scanRepository) ListFindings(ctx context.Context, scanID types.ScanID) ([]*model.Finding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.scans[scanID]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "scan not found",
			goerr.V("scanID", scanID),
		)
	}

	findings := make([]*model.Finding, 0, len(data.findings))
	for _, f := range data.findings {
		findings = append(findings, copyFinding(f))
	}

	return findings, nil
}

func copyScan(scan *model.Scan) *model.Scan {
	cp := *scan
	return &cp
}

func copyFinding(finding *model.Finding) *model.Finding {
	cp := *finding
	if finding.Raw != nil {
		cp.Raw = append([]byte(nil), finding.Raw...)
	}
	return &cp
}
