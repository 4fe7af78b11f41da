package cli

import (
	"bufio"
	"io"

	"github.com/dmitrijs2005/gkeyring/internal/client/models"
)

// writeRows prints one line per item with the requested columns separated by
// tabs. Rows after the first are preceded by a newline; a final newline
// follows unless noNewline is set.
func writeRows(w io.Writer, items []models.Item, columns []string, noNewline bool) error {
	bw := bufio.NewWriter(w)
	for i, it := range items {
		if i > 0 {
			bw.WriteByte('\n')
		}
		for j, col := range columns {
			if j > 0 {
				bw.WriteByte('\t')
			}
			bw.WriteString(it.Column(col))
		}
	}
	if !noNewline {
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
