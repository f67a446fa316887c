package files

//go:generate mockgen -source=store.go -destination=mock_store.go -package=files

import (
	"context"
	"os"
)

// Store enumerates and stats entries by absolute path.
// Implementations must not depend on the process working directory.
type Store interface {
	RootTitle() string
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
	Stat(ctx context.Context, name string) (os.FileInfo, error)
}
