package docgen

import (
	"bytes"
	"strings"
)

// PlainWriter renders a document model as plain text. It backs previews,
// stored artifacts and tests; the binary .docx writer lives outside this
// module behind the same Writer interface.
type PlainWriter struct{}

func (PlainWriter) Write(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	for _, b := range doc.Blocks {
		switch {
		case b.Table != nil:
			for _, row := range b.Table.Rows {
				buf.WriteString(strings.Join(row, " | "))
				buf.WriteByte('\n')
			}
		case b.Paragraph != nil:
			for _, r := range b.Paragraph.Runs {
				buf.WriteString(r.Text)
			}
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes(), nil
}
