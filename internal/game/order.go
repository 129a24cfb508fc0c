package game

// TurnOrder tracks the dealer and the order in which seats act. Seating is
// fixed (0..3 clockwise, partners opposite); the acting order is a rotation
// of it with the current leader first.
type TurnOrder struct {
	dealer int
	order  [NumSeats]int
}

// NewTurnOrder creates an order for the given dealer. The seat left of the
// dealer acts first and the dealer acts last.
func NewTurnOrder(dealer int) *TurnOrder {
	o := &TurnOrder{dealer: dealer % NumSeats}
	o.resetToDealer()
	return o
}

// Dealer returns the dealer's seat
func (o *TurnOrder) Dealer() int {
	return o.dealer
}

// Leader returns the first seat to act
func (o *TurnOrder) Leader() int {
	return o.order[0]
}

// Order returns a copy of the acting order
func (o *TurnOrder) Order() []int {
	out := make([]int, NumSeats)
	copy(out, o.order[:])
	return out
}

// Clone returns an independent copy
func (o *TurnOrder) Clone() *TurnOrder {
	c := *o
	return &c
}

// NextDealer passes the deal to the left and restores the bidding order
// so the new dealer is last.
func (o *TurnOrder) NextDealer() {
	o.dealer = (o.dealer + 1) % NumSeats
	o.resetToDealer()
}

// SetLeader rotates the order left until seat is first, keeping the
// relative seating of everyone else.
func (o *TurnOrder) SetLeader(seat int) {
	for i := 0; i < NumSeats && o.order[0] != seat; i++ {
		first := o.order[0]
		copy(o.order[:], o.order[1:])
		o.order[NumSeats-1] = first
	}
}

func (o *TurnOrder) resetToDealer() {
	for i := range o.order {
		o.order[i] = (o.dealer + 1 + i) % NumSeats
	}
}
