package backup

import (
	"bytes"
	"encoding/json"

	"github.com/aelpxy/atlassnap/pkg/models"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DecodePayload accepts a single snapshot document, an array of them, or a
// list envelope with a "results" array.
func DecodePayload(data []byte) ([]map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Wrap(err, "failed to decode payload")
	}
	return documents(v)
}

func DecodeYAMLPayload(data []byte) ([]map[string]any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, errors.Wrap(err, "failed to decode yaml payload")
	}
	return documents(v)
}

func documents(v any) ([]map[string]any, error) {
	switch doc := v.(type) {
	case map[string]any:
		if results, ok := doc["results"]; ok {
			items, ok := results.([]any)
			if !ok {
				return nil, errors.New("results is not a list")
			}
			return documentList(items)
		}
		return []map[string]any{doc}, nil
	case []any:
		return documentList(doc)
	default:
		return nil, errors.Errorf("unexpected payload of type %T", v)
	}
}

func documentList(items []any) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, errors.Errorf("entry %d is not an object", i)
		}
		out = append(out, m)
	}
	return out, nil
}

// ParsePayload decodes data and parses every document in it. The first
// document that fails to parse aborts the call.
func ParsePayload(p *Parser, data []byte, yamlInput bool) ([]*models.CloudBackupSnapshot, error) {
	decode := DecodePayload
	if yamlInput {
		decode = DecodeYAMLPayload
	}

	docs, err := decode(data)
	if err != nil {
		return nil, err
	}

	snapshots := make([]*models.CloudBackupSnapshot, 0, len(docs))
	for i, doc := range docs {
		snap, err := p.Parse(doc)
		if err != nil {
			return nil, errors.Wrapf(err, "entry %d", i)
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, nil
}
