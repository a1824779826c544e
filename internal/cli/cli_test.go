// Package cli_test exercises the hairhue commands end to end.
package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/jmylchreest/hairhue/internal/cli"
	"github.com/jmylchreest/hairhue/internal/palette"
	"github.com/jmylchreest/hairhue/internal/preset"
	"github.com/jmylchreest/hairhue/internal/prompt"
)

// run executes the root command with args in an isolated directory and
// returns what it wrote to stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	var outBuf, errBuf bytes.Buffer
	root := cli.NewRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&outBuf)
	root.SetErr(&errBuf)

	err := root.Execute()
	return outBuf.String(), err
}

func TestPaletteCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
		wantErr  bool
	}{
		{
			name:     "standard colours",
			args:     []string{"palette"},
			contains: []string{"ID", "NAME", "jet-black", "Golden Blonde"},
			excludes: []string{"ice-blonde"},
		},
		{
			name:     "premium included",
			args:     []string{"palette", "--premium"},
			contains: []string{"jet-black", "ice-blonde"},
		},
		{
			name:     "preview is ignored off a terminal",
			args:     []string{"palette", "--preview"},
			contains: []string{"jet-black"},
			excludes: []string{"\033["},
		},
		{
			name:    "unknown family",
			args:    []string{"palette", "--family", "teal"},
			wantErr: true,
		},
		{
			name:    "unknown format",
			args:    []string{"palette", "--format", "xml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, "", tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("output missing %q:\n%s", s, got)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(got, s) {
					t.Errorf("output unexpectedly contains %q:\n%s", s, got)
				}
			}
		})
	}
}

func TestPaletteJSONFamilyFilter(t *testing.T) {
	got, err := run(t, "", "palette", "--premium", "--family", "blonde", "--format", "json")
	if err != nil {
		t.Fatalf("palette: %v", err)
	}

	var colors []palette.HairColor
	if err := json.Unmarshal([]byte(got), &colors); err != nil {
		t.Fatalf("decode: %v\n%s", err, got)
	}
	if len(colors) == 0 {
		t.Fatal("no blondes listed")
	}
	for _, c := range colors {
		if c.Family != palette.FamilyBlonde {
			t.Errorf("%s has family %s", c.ID, c.Family)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	got, err := run(t, "", "suggest", "medium-brown", "--format", "json")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}

	var suggestions []palette.ColorSuggestion
	if err := json.Unmarshal([]byte(got), &suggestions); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := palette.SuggestAccents("medium-brown", palette.Default())
	if len(suggestions) != len(want) {
		t.Fatalf("got %d suggestions, want %d", len(suggestions), len(want))
	}
	for i := range want {
		if suggestions[i].Color.ID != want[i].Color.ID || suggestions[i].Reason != want[i].Reason {
			t.Errorf("suggestion %d = %s (%s), want %s (%s)", i,
				suggestions[i].Color.ID, suggestions[i].Reason, want[i].Color.ID, want[i].Reason)
		}
	}

	if _, err := run(t, "", "suggest", "no-such-colour"); err == nil {
		t.Error("expected error for unknown base")
	}
}

func TestContrastCommand(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		want    string
		wantErr bool
	}{
		{name: "black on white", a: "#000000", b: "#FFFFFF", want: "21.00"},
		{name: "same colour", a: "#5D4037", b: "5d4037", want: "1.00"},
		{name: "palette ids", a: "jet-black", b: "jet-black", want: "1.00"},
		{name: "bad hex", a: "#GGGGGG", b: "#000000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, "", "contrast", tt.a, tt.b)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && strings.TrimSpace(got) != tt.want {
				t.Errorf("contrast = %q, want %q", strings.TrimSpace(got), tt.want)
			}
		})
	}
}

func TestValidateCommand(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		want    string
		wantErr bool
	}{
		{
			name:  "single tone from stdin",
			stdin: `{"type":"single-tone","singleTone":{"colorId":"auburn"}}`,
			args:  []string{"validate", "-"},
			want:  "ok",
		},
		{
			name: "too close accent",
			stdin: `{"type":"accented","accented":{"baseColorId":"jet-black","accentColorId":"jet-black",
				"technique":"highlights","intensity":"standard","placement":"overall","blend":"soft"}}`,
			args:    []string{"validate", "-"},
			want:    "rejected: Accent too close to base; try Ice Blonde",
			wantErr: true,
		},
		{
			name: "json output",
			stdin: `{"type":"accented","accented":{"baseColorId":"dark-brown","accentColorId":"golden-blonde",
				"technique":"ombre","intensity":"standard","placement":"overall","blend":"soft"}}`,
			args:    []string{"validate", "-", "--format", "json"},
			want:    `"reason": "Ombré technique works best with mid-ends or tips placement"`,
			wantErr: true,
		},
		{
			name: "preset",
			args: []string{"validate", "--preset", "honey-balayage"},
			want: "ok",
		},
		{
			name:    "unknown preset",
			args:    []string{"validate", "--preset", "no-such-preset"},
			wantErr: true,
		},
		{
			name:    "no input",
			args:    []string{"validate"},
			wantErr: true,
		},
		{
			name:    "malformed json",
			stdin:   `{"type":`,
			args:    []string{"validate", "-"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.stdin, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.want != "" && !strings.Contains(got, tt.want) {
				t.Errorf("output = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestPromptCommand(t *testing.T) {
	p := palette.Default()
	ombre, _ := preset.Lookup("sunset-ombre")
	brunette, _ := preset.Lookup("classic-brunette")

	withMaintenance := prompt.DefaultOptions()
	withMaintenance.IncludeMaintenanceInfo = true

	plain := prompt.DefaultOptions()
	plain.ProfessionalTerms = false
	plain.PreserveStyle = false

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "preset defaults",
			args: []string{"prompt", "--preset", "sunset-ombre"},
			want: prompt.ToPrompt(ombre.Choice, p, prompt.DefaultOptions()),
		},
		{
			name: "maintenance",
			args: []string{"prompt", "--preset", "sunset-ombre", "--maintenance"},
			want: prompt.ToPrompt(ombre.Choice, p, withMaintenance),
		},
		{
			name: "plain without style",
			args: []string{"prompt", "--preset", "classic-brunette", "--plain", "--no-preserve-style"},
			want: prompt.ToPrompt(brunette.Choice, p, plain),
		},
		{
			name: "simple",
			args: []string{"prompt", "--preset", "sunset-ombre", "--simple"},
			want: prompt.ToSimplePrompt(ombre.Choice, p),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("prompt: %v", err)
			}
			if strings.TrimSuffix(got, "\n") != tt.want {
				t.Errorf("prompt = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPresetsCommand(t *testing.T) {
	got, err := run(t, "", "presets")
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	for _, p := range preset.All() {
		if !strings.Contains(got, p.ID) {
			t.Errorf("preset %s not listed", p.ID)
		}
	}

	got, err = run(t, "", "presets", "show", "sunset-ombre", "--prompt")
	if err != nil {
		t.Fatalf("presets show: %v", err)
	}
	for _, s := range []string{"Sunset Ombré", "maintenance:", "prompt: ", `"type": "accented"`} {
		if !strings.Contains(got, s) {
			t.Errorf("show output missing %q:\n%s", s, got)
		}
	}
	if strings.Contains(got, "invalid against") {
		t.Errorf("preset reported invalid:\n%s", got)
	}

	if _, err := run(t, "", "presets", "show", "nope"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestVersionCommand(t *testing.T) {
	got, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(got, "hairhue ") {
		t.Errorf("version output = %q", got)
	}
}

func TestPaletteFileFlag(t *testing.T) {
	var buf bytes.Buffer
	if err := palette.Encode(&buf, palette.MustNew([]palette.HairColor{
		{ID: "teal-dream", Name: "Teal Dream", Hex: "#008080", Family: palette.FamilyFashion},
		{ID: "snow", Name: "Snow", Hex: "#FFFFFF", Family: palette.FamilyPlatinum},
	})); err != nil {
		t.Fatalf("encode: %v", err)
	}

	dir := t.TempDir()
	path := dir + "/palette.yaml"
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("write palette: %v", err)
	}

	got, err := run(t, "", "palette", "--palette", path)
	if err != nil {
		t.Fatalf("palette: %v", err)
	}
	if !strings.Contains(got, "teal-dream") || strings.Contains(got, "jet-black") {
		t.Errorf("custom palette not used:\n%s", got)
	}

	if _, err := run(t, "", "palette", "--palette", dir+"/missing.yaml"); err == nil {
		t.Error("expected error for a missing palette file")
	}
}
