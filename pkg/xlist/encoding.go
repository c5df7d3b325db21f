package xlist

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the list as a JSON array.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.ToSlice())
}

// UnmarshalJSON replaces the contents of l with the decoded array.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	l.replace(values)
	return nil
}

func (l *List[T]) MarshalYAML() (any, error) {
	return l.ToSlice(), nil
}

func (l *List[T]) UnmarshalYAML(value *yaml.Node) error {
	var values []T
	if err := value.Decode(&values); err != nil {
		return err
	}
	l.replace(values)
	return nil
}

func (l *List[T]) replace(values []T) {
	l.reset()
	for _, v := range values {
		l.Append(v)
	}
}
