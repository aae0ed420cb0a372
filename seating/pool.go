// SPDX-License-Identifier: MIT

package seating

// pool is the ordered set of rotators not yet seated in the current round.
// members stays ascending; removal preserves order, so a front-to-back scan
// always meets lower indices first and the tie-break stays lowest-index.
type pool struct {
	members []int
}

// reset refills the pool with 0..n-1, reusing the backing array.
func (p *pool) reset(n int) {
	p.members = p.members[:0]
	for i := 0; i < n; i++ {
		p.members = append(p.members, i)
	}
}

func (p *pool) empty() bool { return len(p.members) == 0 }

// removeAt drops the member at position pos, keeping the rest in order.
func (p *pool) removeAt(pos int) {
	copy(p.members[pos:], p.members[pos+1:])
	p.members = p.members[:len(p.members)-1]
}
