// Package scanner discovers migratable Oracle source files on disk.
package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/domain"
)

var skipDirs = map[string]bool{
	".git":         true,
	".oramigrate":  true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"bin":          true,
}

// plsqlExtensions are the SQL*Plus conventions for program units. Plain .sql
// files land in SQLFiles; the dispatcher sniffs their content for DDL.
var plsqlExtensions = map[string]bool{
	".pks": true, // package spec
	".pkb": true, // package body
	".prc": true,
	".fnc": true,
	".trg": true,
	".vw":  true,
	".pls": true,
	".plb": true,
	".typ": true,
}

// FileScanner implements domain.SourceScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

func (s *FileScanner) Scan(rootPath string, excludePaths ...string) (*domain.ScanResult, error) {
	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, err
	}

	extraSkip := make(map[string]bool, len(excludePaths))
	for _, p := range excludePaths {
		extraSkip[strings.TrimSuffix(p, "/")] = true
	}

	result := &domain.ScanResult{RootPath: absPath}

	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, _ := filepath.Rel(absPath, path)
		if d.IsDir() {
			if skipDirs[d.Name()] || extraSkip[d.Name()] || extraSkip[relPath] {
				return filepath.SkipDir
			}
			return nil
		}

		result.AllFiles = append(result.AllFiles, relPath)
		ext := strings.ToLower(filepath.Ext(d.Name()))
		switch {
		case ext == ".sql":
			result.SQLFiles = append(result.SQLFiles, relPath)
		case plsqlExtensions[ext]:
			result.PLSQLFiles = append(result.PLSQLFiles, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
