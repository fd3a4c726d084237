package types

type ScanStatus string

const (
	ScanStatusPending    ScanStatus = "pending"
	ScanStatusProcessing ScanStatus = "processing"
	ScanStatusDone       ScanStatus = "done"
	ScanStatusFailed     ScanStatus = "failed"
)

func (x ScanStatus) IsValid() bool {
	switch x {
	case ScanStatusPending, ScanStatusProcessing, ScanStatusDone, ScanStatusFailed:
		return true
	}
	return false
}

// CanAdvance reports whether a scan may move from the current status to next.
// The lifecycle only moves forward: pending → processing → {done, failed}.
// done and failed are terminal.
func (x ScanStatus) CanAdvance(next ScanStatus) bool {
	switch x {
	case ScanStatusPending:
		return next == ScanStatusProcessing
	case ScanStatusProcessing:
		return next == ScanStatusDone || next == ScanStatusFailed
	}
	return false
}
