package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curaprof.toml")
	content := `
install_path = "/opt/cura-5.7"
data_path = "/home/u/.config/cura/5.7"
setting_version = 22
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := Overrides{
		InstallPath:    "/opt/cura-5.7",
		DataPath:       "/home/u/.config/cura/5.7",
		SettingVersion: 22,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curaprof.toml")
	if err := os.WriteFile(path, []byte(`setting_version = 21`), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.SettingVersion != 21 || got.InstallPath != "" {
		t.Errorf("Load() = %+v, want only setting_version set", got)
	}
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got != (Overrides{}) {
		t.Errorf("Load() = %+v, want zero value", got)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	got, err := Load("")
	if err != nil || got != (Overrides{}) {
		t.Errorf("Load(\"\") = (%+v, %v), want zero value and nil", got, err)
	}
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("install_path = [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed TOML")
	}
}
