// models/metric_map.go - JSON map column for challenge metrics
package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// MetricMap maps an opaque progress-metric name to a numeric value. It is the
// shape of both a challenge's requirements and a user challenge's progress,
// stored as a JSON object column. Nested structures are rejected on scan.
type MetricMap map[string]float64

func (m MetricMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *MetricMap) Scan(value interface{}) error {
	if value == nil {
		*m = MetricMap{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported metric map column type %T", value)
	}

	if len(data) == 0 {
		*m = MetricMap{}
		return nil
	}

	out := MetricMap{}
	if err := json.Unmarshal(data, &out); err != nil {
		return errors.New("metric map column is not a flat name/number object")
	}
	*m = out
	return nil
}

// Clone returns an independent copy so merges never alias the stored map.
func (m MetricMap) Clone() MetricMap {
	out := make(MetricMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
