package contracts

import "context"

type SnapshotStorage interface {
	UploadSnapshot(ctx context.Context, objectName string, content []byte) error
}
