package loader

import (
	"bufio"
	"io"
	"strconv"
)

// Write encodes doc in the section-text format accepted by Parse. Nodes and
// edges keep their order; the expected path is written on one line.
func Write(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	var buf []byte

	bw.WriteString(HeaderNodes + "\n")
	for _, n := range doc.Graph.Nodes() {
		buf = strconv.AppendUint(buf[:0], n.ID, 10)
		buf = append(buf, '\n')
		bw.Write(buf)
	}

	bw.WriteString(HeaderEdges + "\n")
	for _, e := range doc.Graph.Edges() {
		buf = strconv.AppendUint(buf[:0], e.A, 10)
		buf = append(buf, ' ')
		buf = strconv.AppendUint(buf, e.B, 10)
		buf = append(buf, ' ')
		buf = strconv.AppendUint(buf, e.Weight, 10)
		buf = append(buf, '\n')
		bw.Write(buf)
	}

	bw.WriteString(HeaderShortestPath + "\n")
	buf = buf[:0]
	for i, id := range doc.Expected {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendUint(buf, id, 10)
	}
	buf = append(buf, '\n')
	bw.Write(buf)

	return bw.Flush()
}
