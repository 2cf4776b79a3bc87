package resultio

import (
	"strconv"
	"strings"

	"github.com/boxnets/netfold/netshape"
)

// Render produces the human/file rendering of a net bitmap (spec §6):
// cell value 0 renders as two spaces, 1 as "[]", and n >= 2 as "[" and
// the single digit n. Rows are separated by newlines; n > 9 is outside
// the documented range and is rendered with Render's best effort (the
// literal decimal digits of n, which will not line up with "[]"-width
// cells — callers should not feed it overlap counts that high).
func Render(b netshape.Bitmap) string {
	rows := make([]string, b.Rows)
	for r, row := range b.Cells {
		var sb strings.Builder
		for _, v := range row {
			switch {
			case v == 0:
				sb.WriteString("  ")
			case v == 1:
				sb.WriteString("[]")
			default:
				sb.WriteByte('[')
				sb.WriteString(strconv.Itoa(v))
			}
		}
		rows[r] = sb.String()
	}
	return strings.Join(rows, "\n")
}
