package review

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Date is a timestamp serialized as YYYY-MM-DD in YAML files. Older files
// stored full RFC3339 timestamps, so unmarshalling accepts both.
type Date struct {
	time.Time
}

// NewDate creates a Date from a time.Time.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// MarshalYAML implements the yaml.Marshaler interface.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.Format("2006-01-02"), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	for _, layout := range []string{"2006-01-02", time.RFC3339, time.RFC3339Nano} {
		t, err := time.Parse(layout, value.Value)
		if err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unable to parse date %q: expected YYYY-MM-DD, RFC3339, or RFC3339Nano format", value.Value)
}
