package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.uber.org/zap"

	"github.com/bcforge/cargo-bounded-context/internal/layout"
	"github.com/bcforge/cargo-bounded-context/internal/manifest"
	"github.com/bcforge/cargo-bounded-context/internal/platform"
)

// ErrAlreadyExists is returned when the target path is taken before any
// write happens.
var ErrAlreadyExists = errors.New("bounded context already exists")

// PathError records a filesystem operation that failed partway through a
// scaffold. Entries created before the failure are left in place.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error { return e.Err }

// Result holds the outcome of a scaffold generation. Paths in Dirs, Files
// and Skipped are slash-separated and relative to OutputDir.
type Result struct {
	OutputDir string
	Dirs      []string
	Files     []string
	Skipped   []string
	Warnings  []string
}

// Scaffolder writes bounded context trees through a billy.Filesystem.
type Scaffolder struct {
	fs     billy.Filesystem
	logger *zap.Logger
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithLogger makes the scaffolder trace every write at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(s *Scaffolder) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a Scaffolder writing relative to the root of fs.
func New(fs billy.Filesystem, opts ...Option) *Scaffolder {
	s := &Scaffolder{fs: fs, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate creates the bounded context called name: the directory template
// with a mod.rs in each directory, Cargo.toml and src/lib.rs. It refuses to
// touch an existing path. The name is used verbatim; validate it first.
func (s *Scaffolder) Generate(name string) (*Result, error) {
	if err := s.checkAbsent(name); err != nil {
		return nil, err
	}

	result := &Result{OutputDir: name}

	if err := s.createTree(name, result); err != nil {
		return nil, err
	}

	data := NewScaffoldData(name)
	manifestBytes, err := renderManifest(data)
	if err != nil {
		return nil, err
	}
	if err := s.writeFile(name, layout.ManifestFileName, manifestBytes, result); err != nil {
		return nil, err
	}

	libBytes, err := renderModule(layout.RootModules())
	if err != nil {
		return nil, err
	}
	if err := s.writeFile(name, layout.RootModuleFile, libBytes, result); err != nil {
		return nil, err
	}

	result.Warnings = append(result.Warnings, s.validateManifest(name)...)

	s.logger.Info("bounded context created",
		zap.String("name", name),
		zap.Int("dirs", len(result.Dirs)),
		zap.Int("files", len(result.Files)),
		zap.Int("skipped", len(result.Skipped)))
	return result, nil
}

// checkAbsent fails unless nothing, not even a dangling symlink, sits at name.
func (s *Scaffolder) checkAbsent(name string) error {
	_, err := s.fs.Lstat(name)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", ErrAlreadyExists, name)
	case errors.Is(err, os.ErrNotExist):
		return nil
	default:
		return &PathError{Op: "stat", Path: name, Err: err}
	}
}

// createTree creates every template directory under base and its mod.rs.
// Existing directories are fine and existing mod.rs files are kept as is.
func (s *Scaffolder) createTree(base string, result *Result) error {
	for _, dir := range layout.Directories() {
		full := path.Join(base, dir)
		if err := s.fs.MkdirAll(full, platform.DirPerm); err != nil {
			return &PathError{Op: "mkdir", Path: full, Err: err}
		}
		result.Dirs = append(result.Dirs, dir)
		s.logger.Debug("created directory", zap.String("path", full))

		mods, _ := layout.Submodules(layout.Leaf(dir))
		content, err := renderModule(mods)
		if err != nil {
			return err
		}

		rel := layout.ModuleFile(dir)
		created, err := s.createIfAbsent(path.Join(base, rel), content)
		if err != nil {
			return err
		}
		if created {
			result.Files = append(result.Files, rel)
		} else {
			result.Skipped = append(result.Skipped, rel)
		}
	}
	return nil
}

// createIfAbsent writes data to a new file and reports false, without
// touching anything, when the file already exists.
func (s *Scaffolder) createIfAbsent(filename string, data []byte) (bool, error) {
	if _, err := s.fs.Lstat(filename); err == nil {
		s.logger.Debug("module file exists, skipping", zap.String("path", filename))
		return false, nil
	}

	f, err := s.fs.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, platform.FilePerm)
	if errors.Is(err, os.ErrExist) {
		s.logger.Debug("module file exists, skipping", zap.String("path", filename))
		return false, nil
	}
	if err != nil {
		return false, &PathError{Op: "create", Path: filename, Err: err}
	}

	_, writeErr := f.Write(data)
	closeErr := f.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		return false, &PathError{Op: "write", Path: filename, Err: err}
	}

	s.logger.Debug("wrote module file", zap.String("path", filename))
	return true, nil
}

// writeFile writes a file below base, replacing any previous content.
func (s *Scaffolder) writeFile(base, rel string, data []byte, result *Result) error {
	filename := path.Join(base, rel)
	if err := util.WriteFile(s.fs, filename, data, platform.FilePerm); err != nil {
		return &PathError{Op: "write", Path: filename, Err: err}
	}
	result.Files = append(result.Files, rel)
	s.logger.Debug("wrote file", zap.String("path", filename))
	return nil
}

// validateManifest reads Cargo.toml back and reports problems as warnings.
// Generation has already succeeded at this point.
func (s *Scaffolder) validateManifest(base string) []string {
	filename := path.Join(base, layout.ManifestFileName)
	data, err := util.ReadFile(s.fs, filename)
	if err != nil {
		return []string{fmt.Sprintf("Could not read manifest: %v", err)}
	}

	m, err := manifest.Parse(data)
	if err != nil {
		return []string{fmt.Sprintf("Could not parse manifest: %v", err)}
	}
	var warnings []string
	if m.Package.Name != base {
		warnings = append(warnings, fmt.Sprintf("/package/name: reads back as %q, expected %q", m.Package.Name, base))
	}

	valResult, err := manifest.Validate(data)
	if err != nil {
		return append(warnings, fmt.Sprintf("Could not validate manifest: %v", err))
	}
	for _, issue := range valResult.Issues {
		s.logger.Debug("manifest validation issue",
			zap.String("path", issue.Path),
			zap.String("keyword", issue.Keyword),
			zap.String("message", issue.Message))
		warnings = append(warnings, issue.String())
	}
	return warnings
}
