package services

import (
	"bufio"
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/csvnorm/internal/core/domain"
	"github.com/custodia-labs/csvnorm/internal/core/ports/driven"
	"github.com/custodia-labs/csvnorm/internal/core/ports/driving"
	"github.com/custodia-labs/csvnorm/internal/logger"
)

// Ensure NormaliseService implements the interface.
var _ driving.CSVNormaliser = (*NormaliseService)(nil)

// NormaliseService runs the in-place normalisation pipeline:
// locate, back up, normalise lines, canonicalise header, write.
type NormaliseService struct {
	files       driven.FileStore
	clock       driven.Clock
	lines       driven.LineNormaliser
	header      driven.HeaderCanonicaliser
	defaultPath string
}

// NewNormaliseService creates a new normalise service.
// defaultPath is used when Normalise is called with an empty path.
func NewNormaliseService(
	files driven.FileStore,
	clock driven.Clock,
	lines driven.LineNormaliser,
	header driven.HeaderCanonicaliser,
	defaultPath string,
) *NormaliseService {
	if defaultPath == "" {
		defaultPath = domain.DefaultInputPath
	}
	return &NormaliseService{
		files:       files,
		clock:       clock,
		lines:       lines,
		header:      header,
		defaultPath: defaultPath,
	}
}

// Normalise runs every stage once, top to bottom. The returned report is
// never nil; on error it holds the stages that completed.
func (s *NormaliseService) Normalise(ctx context.Context, path string) (*domain.Report, error) {
	report := &domain.Report{
		RunID:        uuid.New().String(),
		HeaderAction: domain.HeaderNone,
	}

	logger.Section("Normalise")
	logger.Debug("run %s", report.RunID)

	// 1. Locate input
	input, err := s.Locate(path)
	report.Input = input
	if err != nil {
		return report, err
	}

	// 2. Move input aside
	backup, err := s.Backup(input)
	if err != nil {
		return report, err
	}
	report.Backup = backup

	// 3. Normalise lines from the backup
	lines, err := s.ReadLines(ctx, backup)
	if err != nil {
		return report, err
	}

	// 4. Ensure header
	lines, report.HeaderAction = s.header.Canonicalise(lines)
	logger.Debug("header action: %s", report.HeaderAction)

	// 5. Write back, restoring the backup on failure
	if err := s.Write(input, backup, lines); err != nil {
		return report, err
	}
	report.Lines = len(lines)
	report.Written = true

	logger.Info("wrote %d lines to %s", report.Lines, input)
	return report, nil
}

// Locate resolves path to an existing regular file.
// An empty path selects the default input.
func (s *NormaliseService) Locate(path string) (string, error) {
	if path == "" {
		path = s.defaultPath
	}

	info, err := s.files.Stat(path)
	if err != nil {
		logger.Debug("stat %s: %v", path, err)
		return path, fmt.Errorf("%w: %s", domain.ErrInputNotFound, path)
	}
	if !info.Mode().IsRegular() {
		logger.Debug("%s is not a regular file (mode %s)", path, info.Mode())
		return path, fmt.Errorf("%w: %s", domain.ErrInputNotFound, path)
	}
	return path, nil
}

// Backup moves input to a timestamped backup path and returns it.
// On failure input is left where it was.
func (s *NormaliseService) Backup(input string) (string, error) {
	backup := domain.BackupPath(input, s.clock.Now())
	if err := s.files.Rename(input, backup); err != nil {
		return "", &domain.BackupError{Input: input, Backup: backup, Err: err}
	}
	logger.Debug("moved %s to %s", input, backup)
	return backup, nil
}

// ReadLines normalises every line of the backup. Zero lines is an error;
// the backup is not restored in that case.
func (s *NormaliseService) ReadLines(ctx context.Context, backup string) ([]string, error) {
	f, err := s.files.Open(backup)
	if err != nil {
		return nil, fmt.Errorf("open backup: %w", err)
	}
	defer f.Close()

	lines, err := s.lines.Normalise(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("normalise %s: %w", backup, err)
	}
	if len(lines) == 0 {
		logger.Warn("%s has no lines, leaving backup in place", backup)
		return nil, domain.ErrEmptyResult
	}

	logger.Debug("normalised %d lines", len(lines))
	return lines, nil
}

// Write recreates input with one newline terminated entry per line.
// If anything fails, one attempt is made to move backup back onto input.
func (s *NormaliseService) Write(input, backup string, lines []string) error {
	err := s.write(input, lines)
	if err == nil {
		return nil
	}

	logger.Warn("write %s failed, restoring %s", input, backup)
	werr := &domain.WriteError{Input: input, Backup: backup, Err: err}
	if rerr := s.files.Rename(backup, input); rerr != nil {
		werr.RestoreErr = rerr
	}
	return werr
}

func (s *NormaliseService) write(input string, lines []string) (err error) {
	f, err := s.files.Create(input)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}

