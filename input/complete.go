package input

import (
	"os"
	"path/filepath"
	"strings"
)

// Completer proposes full-line completions for the text typed so far.
type Completer interface {
	Complete(line string) []string
}

// FilenameCompleter completes the last path segment of the line against the
// entries of its directory. Directories are suggested with a trailing
// separator so completion can continue into them. Hidden entries are only
// offered once the segment starts with a dot.
type FilenameCompleter struct{}

// Complete implements Completer.
func (FilenameCompleter) Complete(line string) []string {
	dir, prefix := filepath.Split(line)

	readDir := dir
	if readDir == "" {
		readDir = "."
	}
	entries, err := os.ReadDir(ExpandHome(readDir))
	if err != nil {
		return nil
	}

	var out []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(prefix, ".") {
			continue
		}

		s := dir + name
		if e.IsDir() {
			s += string(filepath.Separator)
		}
		out = append(out, s)
	}
	return out
}

// ExpandHome replaces a leading "~" segment with the value of HOME.
// Only a bare "~" or "~" followed by a path separator is expanded; when
// HOME is unset the text is returned unchanged.
func ExpandHome(s string) string {
	if s != "~" && !strings.HasPrefix(s, "~/") && !strings.HasPrefix(s, "~"+string(filepath.Separator)) {
		return s
	}

	home, ok := os.LookupEnv("HOME")
	if !ok {
		return s
	}
	return home + s[1:]
}
