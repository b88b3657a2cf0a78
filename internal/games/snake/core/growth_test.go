package core

import "testing"

func TestGrowthQueueEnqueueDoesNotAlias(t *testing.T) {
	base := NewGrowthQueue(C(1, 1))
	a := base.Enqueue(C(2, 2))
	b := base.Enqueue(C(3, 3))

	if base.Len() != 1 {
		t.Errorf("base.Len() = %d, expected 1", base.Len())
	}
	if !equalCoords(a.Markers(), []Coordinate{C(1, 1), C(2, 2)}) {
		t.Errorf("a.Markers() = %v", a.Markers())
	}
	if !equalCoords(b.Markers(), []Coordinate{C(1, 1), C(3, 3)}) {
		t.Errorf("b.Markers() = %v", b.Markers())
	}
}

func TestGrowthQueueSettle(t *testing.T) {
	q := NewGrowthQueue(C(0, 5), C(4, 4))

	rest, grow := q.Settle(C(9, 9))
	if grow {
		t.Error("Settle() on an unmarked cell should not grow")
	}
	if rest.Len() != 2 {
		t.Errorf("rest.Len() = %d, expected 2", rest.Len())
	}

	rest, grow = q.Settle(C(4, 4))
	if !grow {
		t.Fatal("Settle() on a marked cell should grow")
	}
	if !equalCoords(rest.Markers(), []Coordinate{C(0, 5)}) {
		t.Errorf("rest.Markers() = %v, expected [(0,5)]", rest.Markers())
	}
	if q.Len() != 2 {
		t.Errorf("Settle() modified the receiver, Len() = %d", q.Len())
	}
}

func TestGrowthQueueSettleOnePerCall(t *testing.T) {
	q := NewGrowthQueue(C(2, 2), C(2, 2))

	rest, grow := q.Settle(C(2, 2))
	if !grow || rest.Len() != 1 {
		t.Fatalf("first Settle() = (len %d, %v), expected (1, true)", rest.Len(), grow)
	}

	rest, grow = rest.Settle(C(2, 2))
	if !grow || rest.Len() != 0 {
		t.Fatalf("second Settle() = (len %d, %v), expected (0, true)", rest.Len(), grow)
	}

	if _, grow = rest.Settle(C(2, 2)); grow {
		t.Error("Settle() on an empty queue should not grow")
	}
}
