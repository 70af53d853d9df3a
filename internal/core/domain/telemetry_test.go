package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/datagen/internal/core/domain"
)

func TestMarkerStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.MarkerStatus
		isTerminal bool
	}{
		{"Pending", domain.MarkerStatusPending, false},
		{"Running", domain.MarkerStatusRunning, false},
		{"Completed", domain.MarkerStatusCompleted, true},
		{"Failed", domain.MarkerStatusFailed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isTerminal, tt.status.IsTerminal())
		})
	}
}
