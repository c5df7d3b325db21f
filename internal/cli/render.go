package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ib-77/xlist/pkg/xlist"
)

const (
	FormatText  = "text"
	FormatLines = "lines"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

func render(w io.Writer, format string, l *xlist.List[string]) error {
	switch format {
	case FormatText:
		_, err := fmt.Fprintln(w, l)
		return err
	case FormatLines:
		for v := range l.All() {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		return json.NewEncoder(w).Encode(l)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(l); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
