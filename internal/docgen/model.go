// Package docgen builds the output document model for per-discipline
// test files. The model is deliberately small (styled runs and string
// table rows) so any writer, the external .docx writer or the plain
// renderer used for previews and tests, can consume it. Fonts and sizing
// are the writer's concern, not the model's.
package docgen

// Run is a styled fragment of paragraph text.
type Run struct {
	Text string `json:"text"`
	Bold bool   `json:"bold,omitempty"`
}

// Paragraph is a sequence of runs with minimal layout hints.
type Paragraph struct {
	Runs     []Run `json:"runs"`
	Centered bool  `json:"centered,omitempty"`
}

// Table is a grid of plain-string cells; the first row is the header.
type Table struct {
	Rows [][]string `json:"rows"`
}

// Block is either a paragraph or a table.
type Block struct {
	Paragraph *Paragraph `json:"paragraph,omitempty"`
	Table     *Table     `json:"table,omitempty"`
}

// Document is one generated output file.
type Document struct {
	Name   string  `json:"name"` // suggested file name, extension left to the writer
	Blocks []Block `json:"blocks"`
}

// Writer renders a document to its final byte format.
type Writer interface {
	Write(doc Document) ([]byte, error)
}

func text(s string) Block {
	return Block{Paragraph: &Paragraph{Runs: []Run{{Text: s}}}}
}

func boldCentered(s string) Block {
	return Block{Paragraph: &Paragraph{Runs: []Run{{Text: s, Bold: true}}, Centered: true}}
}

func centered(s string) Block {
	return Block{Paragraph: &Paragraph{Runs: []Run{{Text: s}}, Centered: true}}
}

func blank() Block {
	return Block{Paragraph: &Paragraph{}}
}
