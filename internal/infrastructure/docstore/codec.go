package docstore

import (
	"encoding/json"
	"fmt"
)

// Локальные бэкенды хранят документ как JSON-объект с теми же именами полей,
// что и firestore-теги сущностей.

func encode(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("encode document: %T is not an object", v)
	}
	return doc, nil
}

func decode(doc map[string]any, dst any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}

// merge применяет частичное обновление к документу на месте
func merge(doc map[string]any, fields map[string]any) error {
	for k, v := range fields {
		if inc, ok := v.(Increment); ok {
			cur, _ := doc[k].(float64)
			doc[k] = cur + float64(inc.Delta)
			continue
		}

		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode field %s: %w", k, err)
		}
		var val any
		if err := json.Unmarshal(raw, &val); err != nil {
			return fmt.Errorf("encode field %s: %w", k, err)
		}
		doc[k] = val
	}
	return nil
}

func clone(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
