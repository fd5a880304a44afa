package snapshot

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"
)

// EncodeJSON renders v as indented JSON.
func EncodeJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode json: %w", err)
	}
	return data, nil
}

// DecodeJSON parses JSON into v. Comments and trailing commas are
// tolerated, so hand-written layout files may be annotated.
func DecodeJSON(data []byte, v any) error {
	if err := json.Unmarshal(jsonc.ToJSON(data), v); err != nil {
		return fmt.Errorf("snapshot: decode json: %w", err)
	}
	return nil
}

// EncodeYAML renders v as YAML.
func EncodeYAML(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode yaml: %w", err)
	}
	return data, nil
}

// DecodeYAML parses YAML into v.
func DecodeYAML(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("snapshot: decode yaml: %w", err)
	}
	return nil
}

// Fingerprint returns the hex BLAKE2b-256 digest of the compact JSON
// encoding of v. Snapshots of equal structures share a fingerprint.
func Fingerprint(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("snapshot: fingerprint: %w", err)
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Load reads the file at path into v, choosing the decoder from the
// extension: .json and .jsonc for JSON, .yaml and .yml for YAML.
func Load(path string, v any) error {
	decode, _, err := codec(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("snapshot: read %s: %w", path, err)
	}
	return decode(data, v)
}

// Save writes v to path, choosing the encoder from the extension as Load
// does. Parent directories are created as needed.
func Save(path string, v any) error {
	_, encode, err := codec(path)
	if err != nil {
		return err
	}
	data, err := encode(v)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("snapshot: create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("snapshot: write %s: %w", path, err)
	}
	return nil
}

func codec(path string) (func([]byte, any) error, func(any) ([]byte, error), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return DecodeJSON, EncodeJSON, nil
	case ".yaml", ".yml":
		return DecodeYAML, EncodeYAML, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}
