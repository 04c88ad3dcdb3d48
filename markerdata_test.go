package pinpoint

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseMarkerDataYAML(t *testing.T) {
	src := `
spawn:
  position: {x: 1, y: 2.5, z: -3}
  label: Spawn point
  link: https://example.com/spawn
  newTab: false
bare: {}
`
	got, err := ParseMarkerData([]byte(src))
	if err != nil {
		t.Fatalf("ParseMarkerData: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	spawn := got["spawn"]
	if spawn.Position == nil || *spawn.Position != (PositionData{X: 1, Y: 2.5, Z: -3}) {
		t.Errorf("Position = %+v", spawn.Position)
	}
	if spawn.Label != "Spawn point" || spawn.Link != "https://example.com/spawn" || bool(spawn.NewTab) {
		t.Errorf("spawn = %+v", spawn)
	}
	bare := got["bare"]
	if bare.Position != nil || bare.Label != "" || bare.Link != "" || bool(bare.NewTab) {
		t.Errorf("bare = %+v", bare)
	}
}

func TestParseMarkerDataJSON(t *testing.T) {
	src := `{"a": {"position": {"y": 7}, "label": "A", "newTab": "yes"}}`
	got, err := ParseMarkerData([]byte(src))
	if err != nil {
		t.Fatalf("ParseMarkerData: %v", err)
	}
	a := got["a"]
	if a.Position == nil || *a.Position != (PositionData{Y: 7}) {
		t.Errorf("Position = %+v", a.Position)
	}
	if a.Label != "A" || !bool(a.NewTab) {
		t.Errorf("a = %+v", a)
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{`true`, true},
		{`false`, false},
		{`null`, false},
		{`~`, false},
		{`0`, false},
		{`0.0`, false},
		{`1`, true},
		{`-2.5`, true},
		{`.nan`, false},
		{`""`, false},
		{`"false"`, true},
		{`"0"`, true},
		{`no`, true}, // YAML 1.2: a plain string, not a bool
		{`[]`, true},
		{`{}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseMarkerData([]byte("m: {newTab: " + tt.value + "}"))
			if err != nil {
				t.Fatalf("ParseMarkerData: %v", err)
			}
			if bool(got["m"].NewTab) != tt.want {
				t.Errorf("newTab %s = %v, want %v", tt.value, bool(got["m"].NewTab), tt.want)
			}
		})
	}
}

func TestTruthyAbsentIsFalse(t *testing.T) {
	got, err := ParseMarkerData([]byte("m: {label: x}"))
	if err != nil {
		t.Fatal(err)
	}
	if got["m"].NewTab {
		t.Error("absent newTab should be false")
	}
}

func TestParseMarkerDataInvalid(t *testing.T) {
	tests := []string{
		`[1, 2, 3]`,
		`m: {position: "here"}`,
		`m: {position: {x: [1]}}`,
		`{bad`,
	}
	for _, src := range tests {
		_, err := ParseMarkerData([]byte(src))
		if err == nil {
			t.Errorf("ParseMarkerData(%q) should fail", src)
			continue
		}
		if !strings.HasPrefix(err.Error(), "pinpoint: parse marker data:") {
			t.Errorf("error = %q, want pinpoint prefix", err)
		}
	}
}

func TestLoadMarkerFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "markers.yaml")
	if err := os.WriteFile(path, []byte("m: {label: From file}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadMarkerFile(path)
	if err != nil {
		t.Fatalf("LoadMarkerFile: %v", err)
	}
	if got["m"].Label != "From file" {
		t.Errorf("Label = %q", got["m"].Label)
	}

	if _, err := LoadMarkerFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}
