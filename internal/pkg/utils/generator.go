package utils

import (
	"fmt"
	"patient-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateSnapshotObjectName returns a lexically sortable object name, so
// listing a prefix yields snapshots in write order.
func GenerateSnapshotObjectName(prefix string, at time.Time) string {
	return fmt.Sprintf("%s/%s.json", prefix, at.UTC().Format("20060102T150405.000000000Z"))
}
