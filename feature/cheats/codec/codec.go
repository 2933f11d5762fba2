package codec

import "strings"

// Line markers of the flat cheats.txt format.
const (
	nameMarker        = "# Name:"
	descriptionMarker = "# Description:"
	typeMarker        = "# Type:"
)

// TypeSet answers whether a type id is currently registered. The registry
// satisfies it; the codec only needs this one method to repair unknown
// type tags while parsing.
type TypeSet interface {
	Has(id string) bool
}

// Record is one flat-file cheat entry. Code is the only mandatory field
// for a record to exist.
type Record struct {
	Name        string
	Description string
	Type        string
	Code        string
}

// Parse reads a cheats.txt body into its ordered record sequence.
//
// Comment lines set the pending record's metadata, any other non-empty
// line is its code (last one wins), and a blank line flushes the record
// once it holds a code. Malformed lines fall through these rules and are
// ignored, so a damaged file degrades to fewer records, never an error.
func Parse(text string, types TypeSet) []Record {
	var records []Record
	current := newRecord()

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)

		if line == "" {
			// Flush only when the pending record holds a code; stray
			// blank lines between entries are tolerated.
			if current.Code != "" {
				records = append(records, current)
				current = newRecord()
			}
			continue
		}

		switch {
		case strings.HasPrefix(line, nameMarker):
			current.Name = strings.TrimSpace(line[len(nameMarker):])
		case strings.HasPrefix(line, descriptionMarker):
			current.Description = strings.TrimSpace(line[len(descriptionMarker):])
		case strings.HasPrefix(line, typeMarker):
			typeID := strings.ToLower(strings.TrimSpace(line[len(typeMarker):]))
			if !types.Has(typeID) {
				typeID = "raw"
			}
			current.Type = typeID
		case !strings.HasPrefix(line, "#"):
			current.Code = line
		}
	}

	if current.Code != "" {
		records = append(records, current)
	}

	return records
}

// Serialize renders records back into the flat-file form: the non-empty
// metadata comments, the code line verbatim, and a blank separator per
// record. An empty sequence serializes to the empty string.
//
// The round trip is lossy by design: spacing and comment order are
// normalized, but re-parsing the output reproduces the same record set.
func Serialize(records []Record) string {
	if len(records) == 0 {
		return ""
	}

	var lines []string
	for _, r := range records {
		if r.Name != "" {
			lines = append(lines, nameMarker+" "+r.Name)
		}
		if r.Description != "" {
			lines = append(lines, descriptionMarker+" "+r.Description)
		}
		if r.Type != "" {
			lines = append(lines, typeMarker+" "+r.Type)
		}
		lines = append(lines, r.Code)
		lines = append(lines, "")
	}

	return strings.TrimRight(strings.Join(lines, "\n"), " \t\n") + "\n"
}

func newRecord() Record {
	return Record{Type: "raw"}
}
