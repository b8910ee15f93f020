// Package backup dumps the database into an Excel workbook, one sheet per
// table, and keeps a bounded number of workbooks on disk.
package backup

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"restaurant-pos/logger"
	"restaurant-pos/services/notify"

	"github.com/xuri/excelize/v2"
)

const (
	filePrefix = "backup_restaurant_data_"
	fileExt    = ".xlsx"
)

// Source yields the tables to export.
type Source interface {
	Tables() []string
	Dump(ctx context.Context, table string) (headers []string, rows [][]interface{}, err error)
}

type Service struct {
	Source     Source
	Dir        string
	MaxBackups int
	Recipient  string
	Notifier   notify.Sender

	mu  sync.Mutex
	now func() time.Time
}

func NewService(src Source, dir string, maxBackups int, recipient string, notifier notify.Sender) *Service {
	if maxBackups < 1 {
		maxBackups = 1
	}
	return &Service{
		Source:     src,
		Dir:        dir,
		MaxBackups: maxBackups,
		Recipient:  recipient,
		Notifier:   notifier,
		now:        time.Now,
	}
}

// Export renders the workbook in memory.
func (s *Service) Export(ctx context.Context) ([]byte, string, error) {
	f, err := s.workbook(ctx)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("write workbook: %w", err)
	}
	name := fmt.Sprintf("restaurant_data_%s%s", s.now().Format("20060102_150405"), fileExt)
	return buf.Bytes(), name, nil
}

// Create writes a new backup file, prunes old ones and notifies the admin
// recipient. It returns the path of the new file.
func (s *Service) Create(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.workbook(ctx)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}
	if err := s.prune(s.MaxBackups - 1); err != nil {
		return "", err
	}

	stamp := s.now().Format("20060102_150405")
	path := filepath.Join(s.Dir, filePrefix+stamp+fileExt)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	logger.Success(fmt.Sprintf("Backup created: %s", filepath.Base(path)))

	s.notify(ctx, stamp, path)
	return path, nil
}

// Backups lists backup files oldest first.
func (s *Service) Backups() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), filePrefix) || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		names = append(names, e.Name())
	}
	// The timestamp in the name sorts chronologically.
	sort.Strings(names)
	return names, nil
}

func (s *Service) prune(keep int) error {
	names, err := s.Backups()
	if err != nil {
		return err
	}
	for len(names) > keep {
		oldest := names[0]
		names = names[1:]
		if err := os.Remove(filepath.Join(s.Dir, oldest)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove old backup %s: %w", oldest, err)
		}
		logger.Info(fmt.Sprintf("Removed oldest backup: %s", oldest))
	}
	return nil
}

func (s *Service) notify(ctx context.Context, stamp, path string) {
	if s.Notifier == nil || s.Recipient == "" {
		return
	}
	subject := "Restaurant Data Backup - " + stamp
	body := fmt.Sprintf("Backup of restaurant data generated on %s.", s.now().Format("2006-01-02 15:04:05"))

	var err error
	if a, ok := s.Notifier.(notify.AttachmentSender); ok {
		err = a.SendAttachment(ctx, s.Recipient, subject, body, path)
	} else {
		err = s.Notifier.Send(ctx, s.Recipient, body)
	}
	if err != nil {
		logger.Error("Failed to send backup notification", err)
	}
}

func (s *Service) workbook(ctx context.Context) (*excelize.File, error) {
	f := excelize.NewFile()
	tables := s.Source.Tables()
	for i, table := range tables {
		headers, rows, err := s.Source.Dump(ctx, table)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("dump %s: %w", table, err)
		}
		if i == 0 {
			if err := f.SetSheetName("Sheet1", table); err != nil {
				f.Close()
				return nil, err
			}
		} else if _, err := f.NewSheet(table); err != nil {
			f.Close()
			return nil, err
		}
		if err := writeSheet(f, table, headers, rows); err != nil {
			f.Close()
			return nil, fmt.Errorf("write sheet %s: %w", table, err)
		}
	}
	return f, nil
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]interface{}) error {
	if len(rows) == 0 {
		return f.SetCellValue(sheet, "A1", "No data")
	}
	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
