package node

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// WriteTo serializes n as a Macrocell file: a depth-first, post-order
// traversal of its DAG with both blocks and nodes deduplicated by identity
// (nodes) or value (blocks), so shared substructure is written only once.
func WriteTo(w io.Writer, n *Node) error {
	mw := &mcWriter{
		write:  w,
		nodes:  make(map[*Node]int),
		blocks: make(map[Block]int),
	}
	return mw.writeFile(n)
}

// WriteToBytes serializes n as a Macrocell file and returns the bytes.
func WriteToBytes(n *Node) []byte {
	var buf strings.Builder
	if err := WriteTo(&buf, n); err != nil {
		panic(err) // strings.Builder never fails to write
	}
	return []byte(buf.String())
}

// WriteToString serializes n as a Macrocell file and returns it as a string.
func WriteToString(n *Node) string {
	return string(WriteToBytes(n))
}

type mcWriter struct {
	write  io.Writer
	nodes  map[*Node]int
	blocks map[Block]int
	last   int
}

func (w *mcWriter) writeFile(n *Node) error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	return w.writeNode(n)
}

func (w *mcWriter) writeHeader() error {
	if _, err := fmt.Fprintln(w.write, "[M2] (metalife 1.0)"); err != nil {
		return errors.Wrap(err, "writing macrocell header")
	}
	if _, err := fmt.Fprintln(w.write, "#R B3/S23"); err != nil {
		return errors.Wrap(err, "writing macrocell header")
	}
	return nil
}

func (w *mcWriter) writeNode(n *Node) error {
	size := n.WidthLog2()
	if leaf, ok := n.Leaf(); ok {
		nw, err := w.maybeWriteBlock(leaf.NW)
		if err != nil {
			return err
		}
		ne, err := w.maybeWriteBlock(leaf.NE)
		if err != nil {
			return err
		}
		sw, err := w.maybeWriteBlock(leaf.SW)
		if err != nil {
			return err
		}
		se, err := w.maybeWriteBlock(leaf.SE)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w.write, "%d %d %d %d %d\n", size, nw, ne, sw, se)
		return errors.Wrap(err, "writing macrocell node line")
	}
	inner, _ := n.Inner()
	nw, err := w.maybeWriteNode(inner.NW)
	if err != nil {
		return err
	}
	ne, err := w.maybeWriteNode(inner.NE)
	if err != nil {
		return err
	}
	sw, err := w.maybeWriteNode(inner.SW)
	if err != nil {
		return err
	}
	se, err := w.maybeWriteNode(inner.SE)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w.write, "%d %d %d %d %d\n", size, nw, ne, sw, se)
	return errors.Wrap(err, "writing macrocell node line")
}

func (w *mcWriter) maybeWriteNode(n *Node) (int, error) {
	if index, ok := w.nodes[n]; ok {
		return index, nil
	}
	if n.IsEmpty() {
		return 0, nil
	}
	if err := w.writeNode(n); err != nil {
		return 0, err
	}
	w.last++
	w.nodes[n] = w.last
	return w.last, nil
}

func (w *mcWriter) maybeWriteBlock(b Block) (int, error) {
	if index, ok := w.blocks[b]; ok {
		return index, nil
	}
	if b.IsEmpty() {
		return 0, nil
	}
	for _, row := range b.ToRowsArray() {
		if err := w.writeRow(row); err != nil {
			return 0, err
		}
	}
	if _, err := fmt.Fprintln(w.write); err != nil {
		return 0, errors.Wrap(err, "writing macrocell leaf block")
	}
	w.last++
	w.blocks[b] = w.last
	return w.last, nil
}

func (w *mcWriter) writeRow(row byte) error {
	var buf [9]byte
	for i := range buf {
		buf[i] = '.'
	}
	dollar := 0
	for i := 0; i < 8; i++ {
		if (row>>(7-i))&1 == 1 {
			buf[i] = '*'
			dollar = i + 1
		}
	}
	buf[dollar] = '$'
	_, err := w.write.Write(buf[:dollar+1])
	return errors.Wrap(err, "writing macrocell leaf row")
}

// MacrocellErrorKind broadly classifies a parse failure.
type MacrocellErrorKind int

const (
	InvalidHeader MacrocellErrorKind = iota
	InvalidContent
)

type macrocellErrorHint int

const (
	hintInvalidHeader macrocellErrorHint = iota
	hintTooManyBlockRows
	hintTooManyBlockBits
	hintInvalidTwoStateDepth
	hintSizeTooLarge
	hintInvalidForwardRef
	hintInvalidRefDepth
	hintInvalidBlockAfterBlock
	hintInvalidNumberAfterBlock
	hintInvalidBlockAfterNumber
	hintInvalidNumberAfterNumber
	hintInvalidEolAfterNumber
	hintInvalidChar
)

var hintText = map[macrocellErrorHint]string{
	hintInvalidHeader:            "Macrocell files start with [M2]",
	hintTooManyBlockRows:         "Can't have anything after the 8th '$' in a leaf node",
	hintTooManyBlockBits:         "Too many '.'s and '*'s in a row, max of 8",
	hintInvalidTwoStateDepth:     "Only handles two-state Macrocell files, use '.'s, '*'s, and '$' for 8x8 leaf nodes",
	hintSizeTooLarge:             "Node is too large to be handled",
	hintInvalidForwardRef:        "Child nodes must be declared before parent nodes",
	hintInvalidRefDepth:          "Child nodes must have a size exactly 1 less than the parent node",
	hintInvalidBlockAfterBlock:   "Leaf nodes must be specified on their own line",
	hintInvalidNumberAfterBlock:  "Leaf nodes don't reference other nodes",
	hintInvalidBlockAfterNumber:  "Leaf nodes must be specified on their own line",
	hintInvalidNumberAfterNumber: "Need exactly 4 child nodes",
	hintInvalidEolAfterNumber:    "Need exactly 4 child nodes",
	hintInvalidChar:              "Invalid character",
}

// MacrocellError describes a Macrocell parse failure, with enough context
// (line/column/source line) to render a caret-pointing diagnostic.
type MacrocellError struct {
	line    int
	column  int
	lineSrc []byte
	hint    macrocellErrorHint
}

func newMacrocellError(line, column int, lineSrc []byte, hint macrocellErrorHint) *MacrocellError {
	return &MacrocellError{line: line, column: column, lineSrc: lineSrc, hint: hint}
}

// Kind classifies the failure.
func (e *MacrocellError) Kind() MacrocellErrorKind {
	if e.hint == hintInvalidHeader {
		return InvalidHeader
	}
	return InvalidContent
}

// Line returns the 0-based line index of the failure.
func (e *MacrocellError) Line() int { return e.line }

// Column returns the 0-based column index of the failure.
func (e *MacrocellError) Column() int { return e.column }

// LineSrc returns the source text of the failing line.
func (e *MacrocellError) LineSrc() []byte { return e.lineSrc }

// Hint returns a human-readable explanation of the failure.
func (e *MacrocellError) Hint() string { return hintText[e.hint] }

// Error renders the failure the way a terminal diagnostic would: the
// offending line, a caret under the exact column, then the hint.
func (e *MacrocellError) Error() string {
	mark := strings.Repeat(" ", e.column) + "^"
	return fmt.Sprintf("Failed to parse macrocell on line %d:\n%s\n%s\n%s\n",
		e.line+1, e.lineSrc, mark, e.Hint())
}

// ReadFromBytes parses a Macrocell file.
func ReadFromBytes(src []byte) (*Node, error) {
	r := &mcReader{src: src}
	return r.read()
}

// ReadFromString parses a Macrocell file given as a string.
func ReadFromString(src string) (*Node, error) {
	return ReadFromBytes([]byte(src))
}

type mcEntry struct {
	isNode bool
	block  Block
	node   *Node
}

type mcToken int

const (
	tokenBlock mcToken = iota
	tokenNumber
	tokenEol
	tokenEof
)

type mcReader struct {
	src   []byte
	at    int
	nodes []mcEntry
}

func (r *mcReader) read() (*Node, error) {
	if err := r.readHeader(); err != nil {
		return nil, err
	}
	return r.readBody()
}

func (r *mcReader) readHeader() error {
	if len(r.src) >= r.at+4 && string(r.src[r.at:r.at+4]) == "[M2]" {
		r.at += 4
		r.consumeLine()
		return nil
	}
	return r.fail(hintInvalidHeader)
}

func (r *mcReader) readBody() (*Node, error) {
	for {
		tok, err := r.peekToken()
		if err != nil {
			return nil, err
		}
		switch tok {
		case tokenBlock:
			block, err := r.consumeBlockLine()
			if err != nil {
				return nil, err
			}
			r.nodes = append(r.nodes, mcEntry{block: block})
		case tokenNumber:
			n, err := r.consumeNodeLine()
			if err != nil {
				return nil, err
			}
			r.nodes = append(r.nodes, mcEntry{isNode: true, node: n})
		case tokenEol:
			r.consumeLine()
		case tokenEof:
			if len(r.nodes) == 0 {
				return Empty(0), nil
			}
			last := r.nodes[len(r.nodes)-1]
			if last.isNode {
				return last.node, nil
			}
			return last.block.expand(), nil
		}
	}
}

func (r *mcReader) consumeNodeLine() (*Node, error) {
	pos := r.at
	size, err := r.consumeNumber(MaxDepth+minWidthLog2, hintSizeTooLarge)
	if err != nil {
		return nil, err
	}
	if size < minWidthLog2 {
		return nil, r.failAt(pos, hintInvalidTwoStateDepth)
	}
	var value *Node
	if size == minWidthLog2 {
		nw, err := r.expectBlockRef()
		if err != nil {
			return nil, err
		}
		ne, err := r.expectBlockRef()
		if err != nil {
			return nil, err
		}
		sw, err := r.expectBlockRef()
		if err != nil {
			return nil, err
		}
		se, err := r.expectBlockRef()
		if err != nil {
			return nil, err
		}
		value = NewLeaf4(nw, ne, sw, se)
	} else {
		childDepth := size - minWidthLog2 - 1
		nw, err := r.expectNodeRef(childDepth)
		if err != nil {
			return nil, err
		}
		ne, err := r.expectNodeRef(childDepth)
		if err != nil {
			return nil, err
		}
		sw, err := r.expectNodeRef(childDepth)
		if err != nil {
			return nil, err
		}
		se, err := r.expectNodeRef(childDepth)
		if err != nil {
			return nil, err
		}
		value = NewInner4(nw, ne, sw, se)
	}
	if err := r.expectLine(hintInvalidBlockAfterNumber, hintInvalidNumberAfterNumber); err != nil {
		return nil, err
	}
	return value, nil
}

func (r *mcReader) expectNodeRef(expectedDepth int) (*Node, error) {
	tok, err := r.peekToken()
	if err != nil {
		return nil, err
	}
	if tok == tokenBlock {
		return nil, r.fail(hintInvalidBlockAfterNumber)
	}
	if tok != tokenNumber {
		return nil, r.fail(hintInvalidEolAfterNumber)
	}
	pos := r.at
	index, err := r.consumeNumber(len(r.nodes), hintInvalidForwardRef)
	if err != nil {
		return nil, err
	}
	if index == 0 {
		return Empty(expectedDepth), nil
	}
	entry := r.nodes[index-1]
	if entry.isNode && entry.node.Depth() == expectedDepth {
		return entry.node, nil
	}
	return nil, r.failAt(pos, hintInvalidRefDepth)
}

func (r *mcReader) expectBlockRef() (Block, error) {
	tok, err := r.peekToken()
	if err != nil {
		return Block{}, err
	}
	if tok == tokenBlock {
		return Block{}, r.fail(hintInvalidBlockAfterNumber)
	}
	if tok != tokenNumber {
		return Block{}, r.fail(hintInvalidEolAfterNumber)
	}
	pos := r.at
	index, err := r.consumeNumber(len(r.nodes), hintInvalidForwardRef)
	if err != nil {
		return Block{}, err
	}
	if index == 0 {
		return EmptyBlock(), nil
	}
	entry := r.nodes[index-1]
	if !entry.isNode {
		return entry.block, nil
	}
	return Block{}, r.failAt(pos, hintInvalidRefDepth)
}

func (r *mcReader) consumeNumber(max int, tooLargeHint macrocellErrorHint) (int, error) {
	pos := r.at
	value := 0
	for {
		b, ok := r.peek()
		if !ok || b < '0' || b > '9' {
			break
		}
		r.consume()
		digit := int(b - '0')
		newValue := value*10 + digit
		if newValue > max || newValue < value {
			return 0, r.failAt(pos, tooLargeHint)
		}
		value = newValue
	}
	return value, nil
}

func (r *mcReader) consumeBlockLine() (Block, error) {
	var rows [8]byte
	row := 0
	bit := 8
	for {
		b, ok := r.peek()
		if !ok {
			break
		}
		switch b {
		case '$':
			if row >= 8 {
				return Block{}, r.fail(hintTooManyBlockRows)
			}
			r.consume()
			row++
			bit = 8
		case '.':
			if row >= 8 {
				return Block{}, r.fail(hintTooManyBlockRows)
			}
			if bit == 0 {
				return Block{}, r.fail(hintTooManyBlockBits)
			}
			r.consume()
			bit--
		case '*':
			if row >= 8 {
				return Block{}, r.fail(hintTooManyBlockRows)
			}
			if bit == 0 {
				return Block{}, r.fail(hintTooManyBlockBits)
			}
			r.consume()
			bit--
			rows[row] |= 1 << uint(bit)
		default:
			goto done
		}
	}
done:
	if err := r.expectLine(hintInvalidBlockAfterBlock, hintInvalidNumberAfterBlock); err != nil {
		return Block{}, err
	}
	return BlockFromRowsArray(rows), nil
}

func (r *mcReader) expectLine(blockHint, numberHint macrocellErrorHint) error {
	tok, err := r.peekToken()
	if err != nil {
		return err
	}
	switch tok {
	case tokenBlock:
		return r.fail(blockHint)
	case tokenNumber:
		return r.fail(numberHint)
	case tokenEol:
		r.consumeLine()
		return nil
	default: // tokenEof
		return nil
	}
}

func (r *mcReader) consumeLine() {
	for {
		b, ok := r.peek()
		r.consume()
		if !ok || b == '\n' || b == '\r' {
			return
		}
	}
}

func (r *mcReader) peekToken() (mcToken, error) {
	for {
		b, ok := r.peek()
		if !ok {
			return tokenEof, nil
		}
		switch {
		case b == ' ' || b == '\t':
			r.consume()
		case b == '.' || b == '*' || b == '$':
			return tokenBlock, nil
		case b >= '0' && b <= '9':
			return tokenNumber, nil
		case b == '\n' || b == '\r' || b == '#':
			return tokenEol, nil
		default:
			return tokenEof, r.fail(hintInvalidChar)
		}
	}
}

func (r *mcReader) peek() (byte, bool) {
	if r.at >= len(r.src) {
		return 0, false
	}
	return r.src[r.at], true
}

func (r *mcReader) consume() {
	r.at++
}

func (r *mcReader) fail(hint macrocellErrorHint) error {
	return r.failAt(r.at, hint)
}

func (r *mcReader) failAt(at int, hint macrocellErrorHint) error {
	line, column, lineSrc := lineInfoFromOffset(r.src, at)
	return newMacrocellError(line, column, lineSrc, hint)
}

// lineInfoFromOffset finds which line of src contains the byte at offset,
// returning its 0-based index, the column within it, and its text with any
// trailing line terminator stripped.
func lineInfoFromOffset(src []byte, offset int) (line, column int, lineSrc []byte) {
	type span struct{ start, end int }
	var lines []span
	start := 0
	i := 0
	for i < len(src) {
		switch src[i] {
		case '\n':
			lines = append(lines, span{start, i})
			i++
			start = i
		case '\r':
			lines = append(lines, span{start, i})
			if i+1 < len(src) && src[i+1] == '\n' {
				i += 2
			} else {
				i++
			}
			start = i
		default:
			i++
		}
	}
	lines = append(lines, span{start, len(src)})

	idx := 0
	for i, l := range lines {
		if l.start <= offset {
			idx = i
		} else {
			break
		}
	}
	l := lines[idx]
	return idx, offset - l.start, src[l.start:l.end]
}
