package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jward/reflectdb"
)

var validFormats = []string{"json", "text"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}

// dumpEntry is one primitive with its handles resolved to text. Unresolvable
// names (forward references into other units, or NoName) render empty.
type dumpEntry struct {
	Kind     string `json:"kind"`
	Name     string `json:"name,omitempty"`
	Parent   string `json:"parent,omitempty"`
	Base     string `json:"base,omitempty"`
	Size     uint32 `json:"size"`
	Value    int64  `json:"value"`
	UniqueID uint32 `json:"unique_id"`
	Type     string `json:"type,omitempty"`
	Modifier string `json:"modifier,omitempty"`
	IsConst  bool   `json:"is_const"`
	Offset   int32  `json:"offset"`
	OwnerID  uint32 `json:"owner_id"`
}

// dumpDoc is the full JSON shape of a snapshot dump.
type dumpDoc struct {
	Names   int            `json:"names"`
	Counts  map[string]int `json:"counts"`
	Entries []dumpEntry    `json:"entries"`
}

func buildDump(db *reflectdb.Database) dumpDoc {
	resolve := func(n reflectdb.Name) string {
		text, _ := db.Names().Text(n)
		return text
	}
	entry := func(kind reflectdb.Kind, p reflectdb.Primitive) dumpEntry {
		e := dumpEntry{
			Kind:   kind.String(),
			Name:   resolve(p.Name),
			Parent: resolve(p.Parent),
		}
		switch kind {
		case reflectdb.KindClass:
			e.Base = resolve(p.Base)
			e.Size = p.Size
		case reflectdb.KindEnumConstant:
			e.Value = p.Value
		case reflectdb.KindFunction:
			e.UniqueID = p.UniqueID
		case reflectdb.KindField:
			e.Type = resolve(p.Type)
			e.Modifier = p.Modifier.String()
			e.IsConst = p.IsConst
			e.Offset = p.Offset
			e.OwnerID = p.OwnerID
		}
		return e
	}

	doc := dumpDoc{
		Names:  db.Names().Len(),
		Counts: make(map[string]int),
	}
	for _, kind := range reflectdb.Kinds() {
		doc.Counts[kind.String()] = db.Store(kind).Len()
		db.Store(kind).Walk(func(_ uint32, p reflectdb.Primitive) {
			doc.Entries = append(doc.Entries, entry(kind, p))
		})
	}
	doc.Counts["field"] += db.UnnamedFields().Len()
	db.UnnamedFields().Walk(func(_ uint32, p reflectdb.Primitive) {
		doc.Entries = append(doc.Entries, entry(reflectdb.KindField, p))
	})
	return doc
}

// renderDump writes db to w in the requested format.
func renderDump(w io.Writer, db *reflectdb.Database, format string) error {
	doc := buildDump(db)
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tNAME\tPARENT\tDETAIL")
	for _, e := range doc.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Kind, e.Name, e.Parent, detailText(e))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%d names, %d primitives\n", doc.Names, len(doc.Entries))
	return nil
}

func detailText(e dumpEntry) string {
	switch e.Kind {
	case "class":
		if e.Base != "" {
			return fmt.Sprintf("base=%s size=%d", e.Base, e.Size)
		}
		return fmt.Sprintf("size=%d", e.Size)
	case "enum_constant":
		return fmt.Sprintf("value=%d", e.Value)
	case "function":
		return fmt.Sprintf("id=%d", e.UniqueID)
	case "field":
		detail := fmt.Sprintf("type=%s %s offset=%d", e.Type, e.Modifier, e.Offset)
		if e.IsConst {
			detail += " const"
		}
		if e.OwnerID != 0 {
			detail += fmt.Sprintf(" fn=%d", e.OwnerID)
		}
		return detail
	}
	return ""
}
