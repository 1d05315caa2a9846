package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Extension is the archive suffix Cura's profile importer expects.
const Extension = ".curaprofile"

// ErrPackaging marks archive write failures (disk, permissions).
var ErrPackaging = errors.New("packaging failed")

var unsafeRunes = regexp.MustCompile(`[^\w-]`)

// Profile is a fully serialized profile ready for packaging: the global
// block plus any per-extruder blocks, keyed by extruder position.
type Profile struct {
	Name      string // sanitized, used for member file names
	Global    string
	Extruders map[int]string
}

// SanitizeName maps a profile name to a filesystem-safe base name.
func SanitizeName(name string) string {
	return unsafeRunes.ReplaceAllString(name, "_")
}

// ResolvePath decides where the archive lands: the current directory by
// default, inside path when it is a directory, or path itself with the
// profile extension enforced.
func ResolvePath(path, name string) string {
	filename := name + Extension
	if path == "" {
		return filename
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, filename)
	}
	if !strings.HasSuffix(path, Extension) {
		ext := filepath.Ext(path)
		return strings.TrimSuffix(path, ext) + Extension
	}
	return path
}

// Write packages the profile as a deflate-compressed archive with one
// member per block. The archive is assembled fully in memory and persisted
// in a single write, so a failure never leaves a partial file at the final
// location.
func Write(path string, p Profile) error {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	if err := addMember(zw, p.Name+".inst.cfg", p.Global); err != nil {
		return err
	}

	positions := make([]int, 0, len(p.Extruders))
	for pos := range p.Extruders {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	for _, pos := range positions {
		name := fmt.Sprintf("%s_extruder_%d.inst.cfg", p.Name, pos)
		if err := addMember(zw, name, p.Extruders[pos]); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrPackaging, err)
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: %v", ErrPackaging, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrPackaging, err)
	}
	return nil
}

func addMember(zw *zip.Writer, name, content string) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPackaging, err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		return fmt.Errorf("%w: %v", ErrPackaging, err)
	}
	return nil
}
