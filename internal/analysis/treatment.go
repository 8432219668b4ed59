// Package analysis holds the treatment-level building blocks shared by the
// commands: the treatment identifier, the exported column names, and the
// reshaping/aggregation steps each analysis repeats per treatment.
package analysis

import (
	"fmt"
	"strconv"
	"strings"
)

// Timing is the firms' order of interaction within a period.
type Timing int

const (
	Simultaneous Timing = iota
	Sequential
)

func (t Timing) String() string {
	if t == Sequential {
		return "SEQ"
	}
	return "SIM"
}

// Competition is the strategic variable the firms set.
type Competition int

const (
	Price Competition = iota
	Quantity
)

func (c Competition) String() string {
	if c == Quantity {
		return "Q"
	}
	return "P"
}

// Variable returns the column-name prefix of the competition's decision
// variable ("Price" or "Quantity").
func (c Competition) Variable() string {
	if c == Quantity {
		return "Quantity"
	}
	return "Price"
}

// Treatment identifies one experimental condition, e.g. SIM-P-3: simultaneous
// timing, price competition, three firms. MarketSize 0 means the treatment
// spans market sizes (the market-size analysis varies it within one file).
type Treatment struct {
	Timing      Timing
	Competition Competition
	MarketSize  int
}

// ParseTreatment parses "SIM-P-3" or "SEQ-Q" style identifiers.
func ParseTreatment(s string) (Treatment, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 && len(parts) != 3 {
		return Treatment{}, fmt.Errorf("invalid treatment %q", s)
	}

	var t Treatment
	switch parts[0] {
	case "SIM":
		t.Timing = Simultaneous
	case "SEQ":
		t.Timing = Sequential
	default:
		return Treatment{}, fmt.Errorf("invalid treatment %q: unknown timing %q", s, parts[0])
	}
	switch parts[1] {
	case "P":
		t.Competition = Price
	case "Q":
		t.Competition = Quantity
	default:
		return Treatment{}, fmt.Errorf("invalid treatment %q: unknown competition type %q", s, parts[1])
	}
	if len(parts) == 3 {
		n, err := strconv.Atoi(parts[2])
		if err != nil || n < 2 {
			return Treatment{}, fmt.Errorf("invalid treatment %q: bad market size %q", s, parts[2])
		}
		t.MarketSize = n
	}
	return t, nil
}

// ParseTreatments parses a list of identifiers, failing on the first bad one.
func ParseTreatments(ids []string) ([]Treatment, error) {
	out := make([]Treatment, 0, len(ids))
	for _, id := range ids {
		t, err := ParseTreatment(id)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (t Treatment) String() string {
	if t.MarketSize == 0 {
		return fmt.Sprintf("%s-%s", t.Timing, t.Competition)
	}
	return fmt.Sprintf("%s-%s-%d", t.Timing, t.Competition, t.MarketSize)
}
