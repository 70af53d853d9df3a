package domain

// MarkerStatus represents the lifecycle state of one marker export.
type MarkerStatus string

const (
	// MarkerStatusPending indicates the marker is planned but not started.
	MarkerStatusPending MarkerStatus = "pending"
	// MarkerStatusRunning indicates the marker's payloads are being loaded.
	MarkerStatusRunning MarkerStatus = "running"
	// MarkerStatusCompleted indicates every payload of the marker was loaded.
	MarkerStatusCompleted MarkerStatus = "completed"
	// MarkerStatusFailed indicates loading the marker failed.
	MarkerStatusFailed MarkerStatus = "failed"
)

// IsTerminal checks if a status is a terminal state (Completed, Failed).
func (s MarkerStatus) IsTerminal() bool {
	return s == MarkerStatusCompleted || s == MarkerStatusFailed
}
