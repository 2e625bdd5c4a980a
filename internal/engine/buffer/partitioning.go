package buffer

import "sort"

// Partitioning divides a sequence of positions into consecutive partitions.
// Partition i covers [start(i), start(i+1)). There is always at least one
// partition; the final start equals the total length.
type Partitioning struct {
	starts *SplitVector[Position]
}

// NewPartitioning creates a partitioning with a single empty partition.
func NewPartitioning() *Partitioning {
	p := &Partitioning{starts: NewSplitVector[Position]()}
	p.starts.Insert(0, 0)
	p.starts.Insert(1, 0)
	return p
}

// Partitions returns the number of partitions.
func (p *Partitioning) Partitions() int {
	return p.starts.Length() - 1
}

// InsertPartition inserts a new partition start at index partition.
func (p *Partitioning) InsertPartition(partition int, pos Position) {
	p.starts.Insert(partition, pos)
}

// SetPartitionStartPosition moves the start of partition.
func (p *Partitioning) SetPartitionStartPosition(partition int, pos Position) {
	if partition < 0 || partition > p.Partitions() {
		return
	}
	p.starts.SetValueAt(partition, pos)
}

// InsertText shifts every partition after partition by delta.
func (p *Partitioning) InsertText(partition int, delta Position) {
	for i := partition + 1; i <= p.Partitions(); i++ {
		p.starts.SetValueAt(i, p.starts.ValueAt(i)+delta)
	}
}

// RemovePartition merges partition into its predecessor.
func (p *Partitioning) RemovePartition(partition int) {
	if partition <= 0 || partition > p.Partitions() {
		return
	}
	p.starts.Delete(partition)
}

// PositionFromPartition returns the start of partition. Indices past the end
// return the total length.
func (p *Partitioning) PositionFromPartition(partition int) Position {
	if partition < 0 {
		return 0
	}
	if partition > p.Partitions() {
		partition = p.Partitions()
	}
	return p.starts.ValueAt(partition)
}

// PartitionFromPosition returns the partition containing pos. Positions at or
// past the end map to the last partition.
func (p *Partitioning) PartitionFromPosition(pos Position) int {
	last := p.Partitions() - 1
	if last <= 0 || pos <= 0 {
		return 0
	}
	if pos >= p.starts.ValueAt(last) {
		return last
	}
	// First partition whose start is beyond pos, minus one.
	return sort.Search(last+1, func(i int) bool {
		return p.starts.ValueAt(i) > pos
	}) - 1
}
