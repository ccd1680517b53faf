package ini

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/phpx-labs/cargo-php/internal/platform"
	"github.com/rs/zerolog/log"
)

// DisabledMarker is the php.ini comment character that disables a directive.
const DisabledMarker = ";"

// ErrNotInstalled is returned when removing an extension whose library file
// is absent.
var ErrNotInstalled = errors.New("unable to find extension installed")

// Action is the state an extension's directive is reconciled to.
type Action int

const (
	Enable Action = iota
	Disable
	Remove
)

func (a Action) String() string {
	switch a {
	case Enable:
		return "enable"
	case Disable:
		return "disable"
	case Remove:
		return "remove"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Line returns the canonical directive loading filename.
func Line(filename string, enabled bool) string {
	line := "extension=" + filename
	if !enabled {
		line = DisabledMarker + line
	}
	return line
}

// maxLineSize bounds a single php.ini line.
const maxLineSize = 16 << 20

// Lines returns a single-pass sequence of the lines in r, without line
// terminators.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			if !yield(strings.TrimSuffix(scanner.Text(), "\r"), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield("", err)
		}
	}
}

// Reconcile rewrites the php.ini at path so that exactly one directive (none
// for Remove) references filename. Enable and Disable create the file when
// it does not exist; Remove leaves a missing file alone.
func Reconcile(path, filename string, action Action) error {
	if filename == "" {
		return fmt.Errorf("reconciling %s: empty extension file name", path)
	}

	// A symlinked php.ini is rewritten at its target so the link survives.
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	mode := os.FileMode(0644)
	var kept []string

	f, err := os.Open(path)
	switch {
	case err == nil:
		info, statErr := f.Stat()
		if statErr == nil {
			mode = info.Mode().Perm()
		}
		for line, readErr := range Lines(f) {
			if readErr != nil {
				f.Close()
				return fmt.Errorf("reading line from %s: %w", path, readErr)
			}
			if !strings.Contains(line, filename) {
				kept = append(kept, line)
			}
		}
		f.Close()
	case os.IsNotExist(err):
		if action == Remove {
			log.Debug().Str("ini", path).Msg("configuration file absent, nothing to remove")
			return nil
		}
	default:
		return fmt.Errorf("opening %s: %w", path, err)
	}

	switch action {
	case Enable:
		kept = append(kept, Line(filename, true))
	case Disable:
		kept = append(kept, Line(filename, false))
	}

	var b strings.Builder
	for _, line := range kept {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if err := writeFile(path, []byte(b.String()), mode); err != nil {
		return fmt.Errorf("updating %s: %w", path, err)
	}
	log.Debug().Str("ini", path).Str("extension", filename).Stringer("action", action).Msg("configuration reconciled")
	return nil
}

// writeFile replaces path with data via a temporary file in the same
// directory.
func writeFile(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := platform.Chmod(tmpName, mode); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Uninstall deletes the installed library at libPath and, when iniPath is
// set, removes the directives referencing filename from it.
func Uninstall(libPath, iniPath, filename string) error {
	info, err := os.Stat(libPath)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotInstalled, libPath)
	}

	if err := os.Remove(libPath); err != nil {
		return fmt.Errorf("removing extension %s: %w", libPath, err)
	}

	if iniPath == "" {
		return nil
	}
	return Reconcile(iniPath, filename, Remove)
}
