package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/punchsheet/punchsheet-backend-go/internal/domain/timesheet"
	"github.com/punchsheet/punchsheet-backend-go/internal/pkg/spreadsheet"
)

// Watcher monitors a drop folder for new punch-clock exports and imports them.
type Watcher struct {
	dir        string
	service    timesheet.TimesheetService
	retryDelay time.Duration
}

func New(dir string, service timesheet.TimesheetService) *Watcher {
	return &Watcher{dir: dir, service: service, retryDelay: 2 * time.Second}
}

func (w *Watcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case evt := <-watcher.Events:
				if evt.Op&(fsnotify.Create|fsnotify.Rename) != 0 && spreadsheet.IsSupported(evt.Name) {
					w.importFile(ctx, evt.Name)
				}
			case err := <-watcher.Errors:
				slog.Error("watch folder error", "error", err)
			}
		}
	}()
	return watcher.Add(w.dir)
}

// Backfill imports exports already sitting in the drop folder.
func (w *Watcher) Backfill(ctx context.Context) error {
	entries, err := filepath.Glob(filepath.Join(w.dir, "*"))
	if err != nil {
		return err
	}
	for _, e := range entries {
		if spreadsheet.IsSupported(e) {
			w.importFile(ctx, e)
		}
	}
	return nil
}

func (w *Watcher) importFile(ctx context.Context, path string) {
	resp, err := w.tryImport(ctx, path)
	if err != nil {
		// The create event can fire while the exporter is still writing the
		// file; give it a moment and retry once before giving up.
		select {
		case <-ctx.Done():
			return
		case <-time.After(w.retryDelay):
		}
		resp, err = w.tryImport(ctx, path)
		if err != nil {
			slog.Error("failed to import dropped file", "path", path, "error", err)
			return
		}
	}
	slog.Info("imported dropped file",
		"path", path,
		"batch_id", resp.BatchID,
		"rows", resp.RowCount,
		"skipped", resp.SkippedRows,
	)
}

func (w *Watcher) tryImport(ctx context.Context, path string) (timesheet.ImportResponse, error) {
	f, err := os.Open(path)
	if err != nil {
		return timesheet.ImportResponse{}, err
	}
	defer f.Close()

	return w.service.Import(ctx, filepath.Base(path), f)
}
