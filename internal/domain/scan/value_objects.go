package scan

import (
	"strings"
	"time"
)

type Symbology string

const (
	SymbologyQR         Symbology = "qr"
	SymbologyUPCA       Symbology = "upc-a"
	SymbologyUPCE       Symbology = "upc-e"
	SymbologyEAN8       Symbology = "ean-8"
	SymbologyEAN13      Symbology = "ean-13"
	SymbologyCode39     Symbology = "code-39"
	SymbologyCode93     Symbology = "code-93"
	SymbologyCode128    Symbology = "code-128"
	SymbologyPDF417     Symbology = "pdf-417"
	SymbologyAztec      Symbology = "aztec"
	SymbologyDataMatrix Symbology = "data-matrix"
)

func (s Symbology) String() string {
	return string(s)
}

// NormalizeSymbology lowercases and maps underscore spellings (code_128) onto the
// hyphenated form.
func NormalizeSymbology(s string) Symbology {
	s = strings.ToLower(strings.TrimSpace(s))
	return Symbology(strings.ReplaceAll(s, "_", "-"))
}

// SymbologySet is an allow-list. The zero value accepts everything.
type SymbologySet struct {
	allowed map[Symbology]struct{}
}

func DefaultSymbologies() []Symbology {
	return []Symbology{
		SymbologyQR, SymbologyUPCA, SymbologyUPCE, SymbologyEAN8, SymbologyEAN13,
		SymbologyCode39, SymbologyCode93, SymbologyCode128, SymbologyPDF417,
		SymbologyAztec, SymbologyDataMatrix,
	}
}

func NewSymbologySet(names []string) SymbologySet {
	if len(names) == 0 {
		return SymbologySet{}
	}
	allowed := make(map[Symbology]struct{}, len(names))
	for _, n := range names {
		if sym := NormalizeSymbology(n); sym != "" {
			allowed[sym] = struct{}{}
		}
	}
	return SymbologySet{allowed: allowed}
}

func (s SymbologySet) Allows(sym Symbology) bool {
	if len(s.allowed) == 0 {
		return true
	}
	_, ok := s.allowed[sym]
	return ok
}

// RawDecode is one event from the decode source, before debouncing.
type RawDecode struct {
	Value     string
	Symbology string
}

// DecodeCandidate is a debounced decode ready to settle a request.
type DecodeCandidate struct {
	Value      string
	Symbology  Symbology
	ObservedAt time.Time
}
