package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/renameio/v2"
)

// writeFileAtomic writes data to path via a pending file in the same
// directory. Readers see either the old file or the complete new one.
func writeFileAtomic(logger *log.Logger, path string, data []byte) error {
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			logger.Debug("cleanup pending file", "path", path, "err", err)
		}
	}()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
