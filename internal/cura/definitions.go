package cura

import (
	"path/filepath"
	"sort"
	"strings"
)

// DefinitionFile returns the path of the generic base definition inside an
// install directory. It is the schema every machine definition layers over.
func DefinitionFile(installPath string) string {
	return filepath.Join(definitionsDir(installPath), "fdmprinter.def.json")
}

// DiscoverDefinitions lists the machine definition names shipped with an
// install, sorted, excluding the abstract fdmprinter/fdmextruder bases.
func DiscoverDefinitions(installPath string) []string {
	if installPath == "" {
		return nil
	}
	matches, err := filepath.Glob(filepath.Join(definitionsDir(installPath), "*.def.json"))
	if err != nil {
		return nil
	}

	var names []string
	for _, path := range matches {
		name := strings.TrimSuffix(filepath.Base(path), ".def.json")
		if name == "fdmprinter" || name == "fdmextruder" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// KnownDefinition reports whether name is in the discovered set. The
// generic fdmprinter base is always accepted.
func KnownDefinition(definitions []string, name string) bool {
	if name == "fdmprinter" {
		return true
	}
	for _, d := range definitions {
		if d == name {
			return true
		}
	}
	return false
}

func definitionsDir(installPath string) string {
	return filepath.Join(installPath, "share", "cura", "resources", "definitions")
}
