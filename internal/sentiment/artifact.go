package sentiment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// decodeArtifact reads path into out, as JSON or YAML by extension.
func decodeArtifact(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArtifactLoad, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(out)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(out)
	default:
		return fmt.Errorf("%w: %s: unsupported artifact format %q (want .json, .yaml or .yml)", ErrArtifactLoad, path, ext)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrArtifactLoad, path, err)
	}
	return nil
}
