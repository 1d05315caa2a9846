package cura

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultSettingVersion is used when no existing config reveals the real
// value. Cura 5.x ships setting_version 20-23.
const DefaultSettingVersion = 23

// DetectSettingVersion reads the setting_version out of existing .inst.cfg
// files under the user-data directory, checking quality_changes first and
// extruders second. Returns false when nothing usable is found.
func DetectSettingVersion(dataPath string) (int, bool) {
	if dataPath == "" {
		return 0, false
	}
	for _, sub := range []string{"quality_changes", "extruders"} {
		matches, err := filepath.Glob(filepath.Join(dataPath, sub, "*.inst.cfg"))
		if err != nil {
			continue
		}
		for _, path := range matches {
			if v, ok := readSettingVersion(path); ok {
				return v, true
			}
		}
	}
	return 0, false
}

// readSettingVersion scans one INI-style .inst.cfg file for the
// setting_version key in its [metadata] section.
func readSettingVersion(path string) (int, bool) {
	f, err := os.Open(path)
	if err != nil {
		return 0, false
	}
	defer f.Close()

	inMetadata := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			inMetadata = line == "[metadata]"
			continue
		}
		if !inMetadata {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found || strings.TrimSpace(key) != "setting_version" {
			continue
		}
		if v, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return v, true
		}
	}
	return 0, false
}
