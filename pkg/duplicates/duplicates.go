// Package duplicates finds labels declared by more than one extension
// record. It only reports; records are never modified.
package duplicates

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/exticons/pkg/errors"
	"github.com/arthur-debert/exticons/pkg/types"
)

// Conflict is a label owned by two or more records, either as their primary
// name or as an alias.
type Conflict struct {
	Label  string
	Owners []string
}

// String formats the conflict for console output.
func (c Conflict) String() string {
	return fmt.Sprintf("%s is declared by %s", c.Label, strings.Join(c.Owners, ", "))
}

// Err wraps the conflict as a LABEL_CONFLICT error.
func (c Conflict) Err() error {
	return errors.Newf(errors.ErrLabelConflict, "label %q is declared by %s", c.Label, strings.Join(c.Owners, ", ")).
		WithDetail("label", c.Label).
		WithDetail("owners", c.Owners)
}

// AliasLink is one alias and the record that declares it.
type AliasLink struct {
	Alias     string
	Extension string
}

// Report is the full result of a duplicate check.
type Report struct {
	Extensions int
	Aliases    int
	Links      []AliasLink
	Conflicts  []Conflict
}

// HasConflicts reports whether any label is owned more than once.
func (r Report) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// Check returns every conflict in one pass. Labels appear in the order they
// were first declared; owners appear in record order, once per record.
func Check(records []types.ExtensionRecord) []Conflict {
	type owners struct {
		names []string
		last  int // index of the last record added, to count each record once
	}

	index := make(map[string]*owners)
	var order []string

	for i, rec := range records {
		for _, label := range rec.Labels() {
			o, ok := index[label]
			if !ok {
				o = &owners{last: -1}
				index[label] = o
				order = append(order, label)
			}
			if o.last == i {
				continue
			}
			o.last = i
			o.names = append(o.names, rec.Name)
		}
	}

	var conflicts []Conflict
	for _, label := range order {
		if o := index[label]; len(o.names) > 1 {
			conflicts = append(conflicts, Conflict{Label: label, Owners: o.names})
		}
	}
	return conflicts
}

// Inspect builds the check report: totals, every alias link, and the conflicts.
func Inspect(records []types.ExtensionRecord) Report {
	report := Report{Extensions: len(records)}
	for _, rec := range records {
		for _, alias := range rec.Aliases {
			report.Links = append(report.Links, AliasLink{Alias: alias, Extension: rec.Name})
		}
	}
	report.Aliases = len(report.Links)
	report.Conflicts = Check(records)
	return report
}
