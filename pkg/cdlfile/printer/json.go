package printer

import "encoding/json"

func (pr *Printer) json(v any) error {
	enc := json.NewEncoder(pr.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
