// Package mover relocates classified files into destination directories.
package mover

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/vrmsort/pkg/utils/permissions"
)

// Move records one relocation.
type Move struct {
	From string
	To   string
}

// Mover moves files under Root. Moves are not transactional: files moved
// before a failure stay where they were moved.
type Mover struct {
	root    string
	dirMode os.FileMode
	logger  hclog.Logger
}

// New creates a mover resolving relative destinations against root (the
// working directory when empty). dirMode applies to created directories.
func New(root string, dirMode uint16, logger hclog.Logger) *Mover {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if dirMode == 0 {
		dirMode = permissions.DefaultDirPerms
	}
	return &Mover{root: root, dirMode: os.FileMode(dirMode), logger: logger}
}

// MoveTo creates destination if needed and moves src into it, keeping the
// base name.
func (m *Mover) MoveTo(src, destination string) (Move, error) {
	dir := destination
	if !filepath.IsAbs(dir) && m.root != "" {
		dir = filepath.Join(m.root, dir)
	}
	if err := os.MkdirAll(dir, m.dirMode); err != nil {
		return Move{}, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	dst := filepath.Join(dir, filepath.Base(src))
	if err := os.Rename(src, dst); err != nil {
		if !errors.Is(err, syscall.EXDEV) {
			return Move{}, err
		}
		m.logger.Debug("Cross-device rename, copying instead", "from", src, "to", dst)
		if err := moveByCopy(src, dst); err != nil {
			return Move{}, err
		}
	}

	m.logger.Debug("Moved file", "from", src, "to", dst)
	return Move{From: src, To: dst}, nil
}

// moveByCopy copies src to dst and removes src. A failed copy leaves no
// partial dst behind.
func moveByCopy(src, dst string) error {
	if err := copyFile(src, dst); err != nil {
		os.Remove(dst)
		return fmt.Errorf("move %s: %w", src, err)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("remove %s after copy: %w", src, err)
	}
	return nil
}

// copyFile copies a single file from src to dst
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	sourceInfo, err := sourceFile.Stat()
	if err != nil {
		return err
	}

	destFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, sourceInfo.Mode())
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		destFile.Close()
		return err
	}
	return destFile.Close()
}
