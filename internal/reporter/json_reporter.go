package reporter

import (
	"encoding/json"
	"io"
	"os"

	"github.com/aleister1102/pathscan/internal/common"
	"github.com/aleister1102/pathscan/internal/models"
)

// WriteJSON encodes report as indented JSON.
func WriteJSON(w io.Writer, report *models.ScanReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(report); err != nil {
		return common.WrapError(err, "failed to encode JSON report")
	}
	return nil
}

func writeJSONFile(path string, report *models.ScanReport) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePermissions)
	if err != nil {
		return common.WrapErrorf(err, "failed to create %s", path)
	}
	if err := WriteJSON(f, report); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
