package palette

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk representation of a palette.
//
//	colors:
//	  - id: jet-black
//	    name: Jet Black
//	    hex: "#0A0A0A"
//	    family: black
type File struct {
	Colors []HairColor `yaml:"colors"`
}

// Load decodes a YAML palette document and validates it with New.
func Load(r io.Reader) (*Palette, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode palette: %w", err)
	}
	if len(f.Colors) == 0 {
		return nil, fmt.Errorf("palette has no colors")
	}

	return New(f.Colors)
}

// LoadFile reads a palette from path.
func LoadFile(path string) (*Palette, error) {
	file, err := os.Open(path) // #nosec G304 - operator-supplied palette path
	if err != nil {
		return nil, fmt.Errorf("failed to open palette file: %w", err)
	}
	defer file.Close()

	p, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Encode writes p as a YAML palette document.
func Encode(w io.Writer, p *Palette) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Colors: p.Colors()}); err != nil {
		return fmt.Errorf("failed to encode palette: %w", err)
	}
	return enc.Close()
}
