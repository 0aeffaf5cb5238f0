package reporter

import (
	"os"

	"github.com/aleister1102/pathscan/internal/common"
	"github.com/rs/zerolog"
)

// DirectoryManager creates report output directories.
type DirectoryManager struct {
	logger zerolog.Logger
}

// NewDirectoryManager creates a new DirectoryManager
func NewDirectoryManager(logger zerolog.Logger) *DirectoryManager {
	return &DirectoryManager{logger: logger}
}

// EnsureOutputDirectory creates outputDir and any missing parents.
func (dm *DirectoryManager) EnsureOutputDirectory(outputDir string) error {
	if err := os.MkdirAll(outputDir, DirPermissions); err != nil {
		dm.logger.Error().Err(err).Str("path", outputDir).Msg("Failed to create directory")
		return common.WrapErrorf(err, "failed to create output directory '%s'", outputDir)
	}
	dm.logger.Debug().Str("path", outputDir).Msg("Output directory ready")
	return nil
}
