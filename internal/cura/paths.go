// Package cura discovers the local Cura environment: install and user-data
// directories, the setting_version in use, and the installed machine
// definitions. All of it is best-effort glue around the filesystem; the
// build pipeline works with whatever subset could be found.
package cura

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strconv"
	"strings"
)

var (
	versionPattern = regexp.MustCompile(`(\d+\.\d+\.?\d*)`)
	versionDirName = regexp.MustCompile(`^\d+\.\d+`)
)

// FindInstallPath locates the Cura installation directory. A non-empty
// override wins when it exists. Otherwise the per-OS application
// directories are scanned for a Cura-looking directory carrying the
// share/cura/resources tree; the newest version wins. Returns "" when
// nothing is found.
func FindInstallPath(override string) string {
	if override != "" {
		if dirExists(override) {
			return override
		}
		return ""
	}

	type candidate struct {
		version string
		path    string
	}
	var candidates []candidate

	for _, base := range installSearchBases() {
		entries, err := os.ReadDir(base)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if !e.IsDir() || !strings.Contains(strings.ToLower(e.Name()), "cura") {
				continue
			}
			path := filepath.Join(base, e.Name())
			if !dirExists(filepath.Join(path, "share", "cura", "resources")) {
				continue
			}
			version := "0.0.0"
			if m := versionPattern.FindString(e.Name()); m != "" {
				version = m
			}
			candidates = append(candidates, candidate{version, path})
		}
	}

	if len(candidates) == 0 {
		return ""
	}
	sort.Slice(candidates, func(i, j int) bool {
		return versionLess(candidates[j].version, candidates[i].version)
	})
	return candidates[0].path
}

// FindDataPath locates the Cura user-data directory (the one holding
// cura.cfg and machine_instances). Same override and newest-version rules
// as FindInstallPath.
func FindDataPath(override string) string {
	if override != "" {
		if dirExists(override) {
			return override
		}
		return ""
	}

	var found []string
	for _, base := range dataSearchBases() {
		entries, err := os.ReadDir(base)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if !e.IsDir() || !versionDirName.MatchString(e.Name()) {
				continue
			}
			path := filepath.Join(base, e.Name())
			if fileExists(filepath.Join(path, "cura.cfg")) || dirExists(filepath.Join(path, "machine_instances")) {
				found = append(found, path)
			}
		}
	}

	if len(found) == 0 {
		return ""
	}
	sort.Slice(found, func(i, j int) bool {
		return versionLess(filepath.Base(found[j]), filepath.Base(found[i]))
	})
	return found[0]
}

// SniffVersion extracts a Cura version string from a path name, or
// "unknown" when the name carries none.
func SniffVersion(path string) string {
	if m := versionPattern.FindString(path); m != "" {
		return m
	}
	return "unknown"
}

func installSearchBases() []string {
	switch runtime.GOOS {
	case "windows":
		return nonEmpty(
			os.Getenv("PROGRAMFILES"),
			os.Getenv("PROGRAMFILES(X86)"),
			os.Getenv("LOCALAPPDATA"),
		)
	case "darwin":
		home, _ := os.UserHomeDir()
		return nonEmpty(filepath.Join(home, "Applications"), "/Applications")
	default:
		home, _ := os.UserHomeDir()
		return nonEmpty(
			filepath.Join(home, ".local", "share"),
			"/usr/share",
			"/opt",
		)
	}
}

func dataSearchBases() []string {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			return []string{filepath.Join(appdata, "cura")}
		}
		return nil
	case "darwin":
		home, _ := os.UserHomeDir()
		return nonEmpty(filepath.Join(home, "Library", "Application Support", "cura"))
	default:
		home, _ := os.UserHomeDir()
		return nonEmpty(
			filepath.Join(home, ".config", "cura"),
			filepath.Join(home, ".local", "share", "cura"),
		)
	}
}

// versionLess compares dotted version strings numerically, part by part.
func versionLess(a, b string) bool {
	ap := versionParts(a)
	bp := versionParts(b)
	for i := 0; i < 3; i++ {
		if ap[i] != bp[i] {
			return ap[i] < bp[i]
		}
	}
	return false
}

func versionParts(v string) [3]int {
	var out [3]int
	for i, part := range strings.SplitN(v, ".", 3) {
		if i >= 3 {
			break
		}
		n, err := strconv.Atoi(strings.TrimSuffix(part, "."))
		if err != nil {
			break
		}
		out[i] = n
	}
	return out
}

func nonEmpty(paths ...string) []string {
	var out []string
	for _, p := range paths {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
