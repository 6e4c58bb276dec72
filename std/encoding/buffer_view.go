package encoding

// BufferView is a bounded parsing view of a Buffer.
// Reads return sub-slices of the underlying buffer without copying.
type BufferView struct {
	buf Buffer
	pos int
}

func NewBufferView(buf Buffer) BufferView {
	return BufferView{buf: buf}
}

func (r *BufferView) IsEOF() bool {
	return r.pos >= len(r.buf)
}

func (r *BufferView) Pos() int {
	return r.pos
}

func (r *BufferView) Length() int {
	return len(r.buf)
}

// Remaining returns the number of unread bytes.
func (r *BufferView) Remaining() int {
	return len(r.buf) - r.pos
}

func (r *BufferView) ReadByte() (byte, error) {
	if r.IsEOF() {
		return 0, ErrBufferOverflow
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// ReadBuf returns the next size bytes without copying.
func (r *BufferView) ReadBuf(size int) (Buffer, error) {
	if size < 0 || size > r.Remaining() {
		return nil, ErrBufferOverflow
	}
	ret := r.buf[r.pos : r.pos+size]
	r.pos += size
	return ret, nil
}

func (r *BufferView) Skip(n int) error {
	_, err := r.ReadBuf(n)
	return err
}

// ReadRecord returns the next complete record of dialect d without copying.
// The view does not advance on error.
func (r *BufferView) ReadRecord(d Dialect) (Buffer, error) {
	start := r.pos
	if r.Remaining() < d.HeaderLength() {
		return nil, ErrTruncatedHeader
	}

	l, _ := d.ByteOrder.Uint(r.buf[start+d.TagWidth : start+d.HeaderLength()])
	avail := r.Remaining() - d.HeaderLength()
	if l > uint64(avail) {
		return nil, ErrLengthMismatch{Declared: l, Actual: avail}
	}

	return r.ReadBuf(d.HeaderLength() + int(l))
}

// ReadNode parses the next record of dialect d into a new Node.
func (r *BufferView) ReadNode(d Dialect) (*Node, error) {
	rec, err := r.ReadRecord(d)
	if err != nil {
		return nil, err
	}
	n := NewNode(d)
	if err = n.Decode(rec); err != nil {
		return nil, err
	}
	return n, nil
}
