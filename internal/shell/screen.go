package shell

// Surface is the append-only display the commands render into. Clear is
// the only removal.
type Surface interface {
	Append(blocks ...Block)
	Clear()
}

// Screen is the in-memory Surface backing a terminal session.
type Screen struct {
	blocks []Block
}

var _ Surface = (*Screen)(nil)

// Append adds blocks in order.
func (s *Screen) Append(blocks ...Block) {
	s.blocks = append(s.blocks, blocks...)
}

// Clear removes every block.
func (s *Screen) Clear() {
	s.blocks = nil
}

// Blocks returns the current blocks. Callers must not modify the slice.
func (s *Screen) Blocks() []Block {
	return s.blocks
}

// Len returns the number of blocks.
func (s *Screen) Len() int {
	return len(s.blocks)
}
