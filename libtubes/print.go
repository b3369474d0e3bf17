package libtubes

import (
	"io"
	"strconv"
	"strings"

	"github.com/fine-structures/fliptubes/gotubes"
)

// AppendTube appends T as "[1, 2, 3]".
func AppendTube(out []byte, T gotubes.Tube) []byte {
	out = append(out, '[')
	for i, v := range T {
		if i > 0 {
			out = append(out, ", "...)
		}
		out = strconv.AppendUint(out, uint64(v), 10)
	}
	return append(out, ']')
}

// AppendTubing appends X as "[[1], [1, 2]]".
func AppendTubing(out []byte, X gotubes.Tubing) []byte {
	out = append(out, '[')
	for i, T := range X {
		if i > 0 {
			out = append(out, ", "...)
		}
		out = AppendTube(out, T)
	}
	return append(out, ']')
}

// AppendEdges appends edges as "[[1, 2], [2, 3]]".
func AppendEdges(out []byte, edges []gotubes.Edge) []byte {
	out = append(out, '[')
	for i, e := range edges {
		if i > 0 {
			out = append(out, ", "...)
		}
		out = AppendTube(out, e[:])
	}
	return append(out, ']')
}

func TubingString(X gotubes.Tubing) string {
	var buf [128]byte
	return string(AppendTubing(buf[:0], X))
}

func EdgesString(edges []gotubes.Edge) string {
	var buf [128]byte
	return string(AppendEdges(buf[:0], edges))
}

// WriteAsString writes each tubing visited by w on its own line.
func (w *Walk) WriteAsString(out io.Writer) error {
	buf := strings.Builder{}
	buf.Grow(64 * len(w.Path))

	var line []byte
	for _, X := range w.Tubings() {
		line = AppendTubing(line[:0], X)
		buf.Write(line)
		buf.WriteByte('\n')
	}
	_, err := io.WriteString(out, buf.String())
	return err
}
