package loader

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"bookstats/internal/models"
)

// LoadCatalog reads a YAML sequence of book mappings.
func LoadCatalog(path string) ([]models.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCatalog(f)
}

// ReadCatalog decodes a YAML sequence of mappings. Keys are kept as written,
// including any leading marker characters.
func ReadCatalog(r io.Reader) ([]models.RawRecord, error) {
	var docs []map[string]any

	if err := yaml.NewDecoder(r).Decode(&docs); err != nil {
		if err == io.EOF {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	records := make([]models.RawRecord, 0, len(docs))

	for _, doc := range docs {
		rec := make(models.RawRecord, len(doc))
		for k, v := range doc {
			put(rec, k, scalarString(v))
		}

		records = append(records, rec)
	}

	return records, nil
}

// scalarString renders a decoded YAML value; nil becomes empty.
func scalarString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
