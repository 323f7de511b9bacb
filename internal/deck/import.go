// internal/deck/import.go
package deck

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/okranz/daregame/internal/models"
)

// ErrMalformedDocument is returned when an import payload is not a valid
// deck document at all. Individual bad items inside a valid document are
// skipped silently instead.
var ErrMalformedDocument = errors.New("malformed deck document")

// importDocument is the wire format accepted by Import:
//
//	{"meta": {...}, "items": [{"id","type","category","age","text",...}]}
//
// meta is ignored.
type importDocument struct {
	Meta  json.RawMessage `json:"meta,omitempty"`
	Items []models.Card   `json:"items"`
}

// Import parses a deck document and appends every well-formed item to the
// session's import list. An item is well-formed when id, category and text
// are non-empty, the kind is truth or dare, and the age is a known rating.
// Returns the number of items actually added.
func (e *Engine) Import(data []byte) (int, error) {
	var doc importDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	added := 0
	for _, item := range doc.Items {
		if !validImport(item) {
			continue
		}
		e.imports = append(e.imports, item)
		added++
	}
	return added, nil
}

func validImport(c models.Card) bool {
	if c.ID == "" || c.Category == "" || c.Text == "" {
		return false
	}
	if c.Kind != models.KindTruth && c.Kind != models.KindDare {
		return false
	}
	return c.Age.Valid()
}
