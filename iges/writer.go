package iges

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Writer assembles the five sections of an IGES file around a list of
// entities. Records are the fixed 80-column form: 72 content columns, the
// section letter in column 73 and a 7-digit sequence number on the right.
type Writer struct {
	ProductID string
	Units     string
	Entities  []Entity
}

func NewWriter(entities ...Entity) *Writer {
	return &Writer{
		ProductID: "astk surface export",
		Units:     "MM",
		Entities:  entities,
	}
}

var unitFlags = map[string]int{
	"IN": 1,
	"MM": 2,
	"FT": 4,
	"M":  6,
	"CM": 10,
}

const (
	globalContentCols = 72
	paramContentCols  = 64
)

// Write emits the complete file: start, global, directory entry, parameter
// data and terminate sections, in that order.
func (this *Writer) Write(w io.Writer) error {
	startLines := []string{this.ProductID}
	globalLines := this.globalLines()
	dirLines, paramLines := this.entityLines()

	var sb strings.Builder
	writeSection(&sb, startLines, 'S')
	writeSection(&sb, globalLines, 'G')
	for i, line := range dirLines {
		fmt.Fprintf(&sb, "%sD%7d\n", line, i+1)
	}
	for i, line := range paramLines {
		fmt.Fprintf(&sb, "%sP%7d\n", line, i+1)
	}

	terminate := fmt.Sprintf("S%7dG%7dD%7dP%7d",
		len(startLines), len(globalLines), len(dirLines), len(paramLines))
	fmt.Fprintf(&sb, "%-72sT%7d\n", terminate, 1)

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Wrap(err, "writing iges sections")
	}

	return nil
}

// WriteFile writes the file at path, appending the .igs extension when the
// path carries neither .igs nor .iges.
func (this *Writer) WriteFile(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".igs", ".iges":
	default:
		path += ".igs"
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}

	if err := this.Write(f); err != nil {
		f.Close()
		return err
	}

	return errors.Wrapf(f.Close(), "closing %s", path)
}

func (this *Writer) globalLines() []string {
	units := strings.ToUpper(this.Units)
	flag, ok := unitFlags[units]
	if !ok {
		units = "MM"
		flag = 2
	}

	now := time.Now().Format("20060102.150405")

	fields := []string{
		"1H,", "1H;",
		hollerith(this.ProductID),
		hollerith(this.ProductID + ".igs"),
		hollerith("astk"),
		hollerith("astk"),
		"32", "38", "6", "308", "15",
		hollerith(this.ProductID),
		"1.",
		fmt.Sprintf("%d", flag),
		hollerith(units),
		"1", "0.01",
		hollerith(now),
		"1E-07", "1000.",
		hollerith("astk"), hollerith("astk"),
		"11", "0",
		hollerith(now),
	}

	return wrapFields(fields, globalContentCols)
}

// entityLines builds the directory entry and parameter data sections
// together, since each refers into the other: the directory entry points at
// the first parameter record, each parameter record carries its directory
// entry pointer in the trailing field.
func (this *Writer) entityLines() (dirLines, paramLines []string) {
	for i, entity := range this.Entities {
		dePointer := 1 + 2*i
		pdPointer := len(paramLines) + 1

		chunks := wrapFields(entity.ParameterData(), paramContentCols)
		for _, chunk := range chunks {
			paramLines = append(paramLines,
				fmt.Sprintf("%-*s%8d", paramContentCols, chunk, dePointer))
		}

		// nine 8-column fields fill the 72 content columns; the D-section
		// sequence number doubles as the directory entry pointer
		dirLines = append(dirLines,
			fmt.Sprintf("%8d%8d%8d%8d%8d%8d%8d%8d%08d",
				entity.TypeNumber(), pdPointer, 0, 0, 0, 0, 0, 0, 0),
			fmt.Sprintf("%8d%8d%8d%8d%8d%8s%8s%8s%8d",
				entity.TypeNumber(), 0, 0, len(chunks), entity.FormNumber(),
				"", "", "", 0))
	}

	return dirLines, paramLines
}

func writeSection(sb *strings.Builder, lines []string, letter byte) {
	for i, line := range lines {
		fmt.Fprintf(sb, "%-72s%c%7d\n", line, letter, i+1)
	}
}

// wrapFields joins comma-delimited fields, terminates with the record
// delimiter and splits the result into lines of at most width columns,
// breaking only at field boundaries.
func wrapFields(fields []string, width int) []string {
	var lines []string
	var line strings.Builder

	for i, field := range fields {
		sep := ","
		if i == len(fields)-1 {
			sep = ";"
		}

		if line.Len() > 0 && line.Len()+len(field)+len(sep) > width {
			lines = append(lines, line.String())
			line.Reset()
		}

		line.WriteString(field)
		line.WriteString(sep)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}

	return lines
}

func hollerith(s string) string {
	return fmt.Sprintf("%dH%s", len(s), s)
}
