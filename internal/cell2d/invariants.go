package cell2d

import "fmt"

// CheckInvariants walks the cycle and verifies the two structural
// invariants that must hold after every Init and every Plane:
// next/prev are mutual inverses, and following next from any live
// vertex visits exactly p distinct vertices before returning. It is a
// debugging/test helper, not part of the hot-path plane-cut contract,
// mirroring the original kernel's check_relations/check_duplicates
// pair used by its example driver.
func (c *Cell) CheckInvariants() error {
	if c.p == 0 {
		return nil
	}
	for i := 0; i < c.p; i++ {
		if c.next(c.prev(i)) != i {
			return fmt.Errorf("cell2d: next(prev(%d)) = %d, want %d", i, c.next(c.prev(i)), i)
		}
		if c.prev(c.next(i)) != i {
			return fmt.Errorf("cell2d: prev(next(%d)) = %d, want %d", i, c.prev(c.next(i)), i)
		}
	}

	seen := make(map[int]bool, c.p)
	k := 0
	for count := 0; count < c.p; count++ {
		if seen[k] {
			return fmt.Errorf("cell2d: cycle revisits vertex %d after %d steps, want %d", k, count, c.p)
		}
		seen[k] = true
		k = c.next(k)
	}
	if k != 0 {
		return fmt.Errorf("cell2d: cycle from vertex 0 did not close after %d steps, landed on %d", c.p, k)
	}
	return nil
}
