package reporter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aleister1102/pathscan/internal/common"
	"github.com/aleister1102/pathscan/internal/models"
)

// WriteList writes items one per line in list order.
func WriteList(w io.Writer, items []string) error {
	bw := bufio.NewWriter(w)
	for _, item := range items {
		if _, err := bw.WriteString(item); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ExportTimestamp formats t for export file names, e.g. 2026-01-01T12-00-00-000Z.
func ExportTimestamp(t time.Time) string {
	return strings.ReplaceAll(t.UTC().Format(exportTimestampLayout), ".", "-")
}

// TextFileName returns the export file name for a report list.
func TextFileName(list, timestamp string) string {
	return fmt.Sprintf("%s%s_%s.txt", TextFilePrefix, list, timestamp)
}

// ExportTextLists writes every report list to its own file in dir and
// returns the written paths in list order.
func ExportTextLists(report *models.ScanReport, dir, timestamp string) ([]string, error) {
	paths := make([]string, 0, len(models.ReportListNames))
	for _, name := range models.ReportListNames {
		items, _ := report.ListByName(name)
		path := filepath.Join(dir, TextFileName(name, timestamp))
		if err := writeListFile(path, items); err != nil {
			return paths, common.WrapErrorf(err, "failed to export list '%s'", name)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeListFile(path string, items []string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePermissions)
	if err != nil {
		return err
	}
	if err := WriteList(f, items); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
