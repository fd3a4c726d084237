package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/remedyhq/remedy/pkg/domain/model"
	"github.com/remedyhq/remedy/pkg/domain/types"
	"github.com/remedyhq/remedy/pkg/repository"
	"github.com/remedyhq/remedy/pkg/utils/safe"
)

func (r *Client) CreateScan(ctx context.Context, scan *model.Scan) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO scans (id, repo, pr_number, commit_sha, scan_type, artifact_url, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		string(scan.ID), scan.Repo, scan.PRNumber, scan.CommitSHA, scan.ScanType,
		scan.ArtifactURL, string(scan.Status), scan.CreatedAt,
	)
	if err != nil {
		return goerr.Wrap(err, "failed to insert scan", goerr.V("scanID", scan.ID))
	}

	return nil
}

func scanScanRow(row interface{ Scan(...any) error }) (*model.Scan, error) {
	var scan model.Scan
	var id, status string
	if err := row.Scan(&id, &scan.Repo, &scan.PRNumber, &scan.CommitSHA,
		&scan.ScanType, &scan.ArtifactURL, &status, &scan.CreatedAt); err != nil {
		return nil, err
	}
	scan.ID = types.ScanID(id)
	scan.Status = types.ScanStatus(status)
	return &scan, nil
}

const scanColumns = `id, repo, pr_number, commit_sha, scan_type, artifact_url, status, created_at`

func (r *Client) GetScan(ctx context.Context, id types.ScanID) (*model.Scan, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+scanColumns+` FROM scans WHERE id = ?`, string(id),
	)

	scan, err := scanScanRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(repository.ErrNotFound, "scan not found", goerr.V("scanID", id))
		}
		return nil, goerr.Wrap(err, "failed to get scan", goerr.V("scanID", id))
	}

	return scan, nil
}

func (r *Client) ListScans(ctx context.Context, repo string, limit int) ([]*model.Scan, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + scanColumns + ` FROM scans ORDER BY created_at DESC LIMIT ?`
	args := []any{limit}
	if repo != "" {
		query = `SELECT ` + scanColumns + ` FROM scans WHERE repo = ? ORDER BY created_at DESC LIMIT ?`
		args = []any{repo, limit}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list scans", goerr.V("repo", repo))
	}
	defer safe.Close(rows)

	var scans []*model.Scan
	for rows.Next() {
		scan, err := scanScanRow(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan row")
		}
		scans = append(scans, scan)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate scans")
	}

	return scans, nil
}

// lockScanStatus reads the current status of a scan inside a transaction.
func lockScanStatus(ctx context.Context, tx *sql.Tx, id types.ScanID) (types.ScanStatus, error) {
	var status string
	err := tx.QueryRowContext(ctx, `SELECT status FROM scans WHERE id = ?`, string(id)).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", goerr.Wrap(repository.ErrNotFound, "scan not found", goerr.V("scanID", id))
		}
		return "", goerr.Wrap(err, "failed to read scan status", goerr.V("scanID", id))
	}
	return types.ScanStatus(status), nil
}

func (r *Client) UpdateScanStatus(ctx context.Context, id types.ScanID, status types.ScanStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to begin transaction")
	}
	defer safe.Rollback(tx)

	current, err := lockScanStatus(ctx, tx, id)
	if err != nil {
		return err
	}

	if !current.CanAdvance(status) {
		return goerr.Wrap(types.ErrInvalidTransition, "scan status may only advance forward",
			goerr.V("scanID", id),
			goerr.V("from", current),
			goerr.V("to", status),
		)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE scans SET status = ? WHERE id = ?`, string(status), string(id),
	); err != nil {
		return goerr.Wrap(err, "failed to update scan status", goerr.V("scanID", id))
	}

	if err := tx.Commit(); err != nil {
		return goerr.Wrap(err, "failed to commit status update", goerr.V("scanID", id))
	}

	return nil
}

func (r *Client) InsertFindings(ctx context.Context, scanID types.ScanID, findings []*model.Finding) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to begin transaction")
	}
	defer safe.Rollback(tx)

	current, err := lockScanStatus(ctx, tx, scanID)
	if err != nil {
		return err
	}

	if current != types.ScanStatusPending {
		return goerr.Wrap(types.ErrInvalidTransition, "scan was already ingested",
			goerr.V("scanID", scanID),
			goerr.V("status", current),
		)
	}

	for seq, f := range findings {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO findings (id, scan_id, seq, file_path, start_line, end_line, rule_id, message, severity, raw, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			string(f.ID), string(scanID), seq, f.FilePath, f.StartLine, f.EndLine,
			f.RuleID, f.Message, f.Severity, []byte(f.Raw), f.CreatedAt,
		); err != nil {
			return goerr.Wrap(err, "failed to insert finding",
				goerr.V("scanID", scanID),
				goerr.V("findingID", f.ID),
			)
		}
	}

	// The status transition commits in the same transaction as the findings:
	// either everything lands or the scan stays pending.
	if _, err := tx.ExecContext(ctx,
		`UPDATE scans SET status = ? WHERE id = ?`,
		string(types.ScanStatusProcessing), string(scanID),
	); err != nil {
		return goerr.Wrap(err, "failed to mark scan processing", goerr.V("scanID", scanID))
	}

	if err := tx.Commit(); err != nil {
		return goerr.Wrap(err, "failed to commit ingestion", goerr.V("scanID", scanID))
	}

	return nil
}

const findingColumns = `id, scan_id, file_path, start_line, end_line, rule_id, message, severity, raw, created_at`

func scanFindingRow(row interface{ Scan(...any) error }) (*model.Finding, error) {
	var f model.Finding
	var id, scanID string
	var raw []byte
	if err := row.Scan(&id, &scanID, &f.FilePath, &f.StartLine, &f.EndLine,
		&f.RuleID, &f.Message, &f.Severity, &raw, &f.CreatedAt); err != nil {
		return nil, err
	}
	f.ID = types.FindingID(id)
	f.ScanID = types.ScanID(scanID)
	f.Raw = raw
	return &f, nil
}

func (r *Client) GetFinding(ctx context.Context, id types.FindingID) (*model.Finding, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+findingColumns+` FROM findings WHERE id = ?`, string(id),
	)

	finding, err := scanFindingRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(repository.ErrNotFound, "finding not found", goerr.V("findingID", id))
		}
		return nil, goerr.Wrap(err, "failed to get finding", goerr.V("findingID", id))
	}

	return finding, nil
}

func (r *Client) ListFindings(ctx context.Context, scanID types.ScanID) ([]*model.Finding, error) {
	if _, err := r.GetScan(ctx, scanID); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+findingColumns+` FROM findings WHERE scan_id = ? ORDER BY seq ASC`,
		string(scanID),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list findings", goerr.V("scanID", scanID))
	}
	defer safe.Close(rows)

	findings := []*model.Finding{}
	for rows.Next() {
		finding, err := scanFindingRow(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan row")
		}
		findings = append(findings, finding)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate findings")
	}

	return findings, nil
}
