package rotation

import "testing"

func TestMaxBipartiteMatching(t *testing.T) {
	// 0-{0,1}, 1-{0}, 2-{1}: maximum matching has size 2.
	adj := [][]int{{0, 1}, {0}, {1}}
	matchL, matchR := MaxBipartiteMatching(adj, 3, 2)

	size := 0
	for u, v := range matchL {
		if v == -1 {
			continue
		}
		size++
		if matchR[v] != u {
			t.Fatalf("matchR inconsistent for edge %d-%d", u, v)
		}
	}
	if size != 2 {
		t.Fatalf("expected matching size 2, got %d", size)
	}
}

func TestMaxBipartiteMatchingNoEdges(t *testing.T) {
	matchL, _ := MaxBipartiteMatching([][]int{{}, {}}, 2, 2)
	for _, v := range matchL {
		if v != -1 {
			t.Fatalf("expected no matches")
		}
	}
}

func TestChainsFromMatching(t *testing.T) {
	// 0->1->3, 2 alone.
	matchL := []int{1, 3, -1, -1}
	chains := chainsFromMatching(4, matchL)
	if len(chains) != 2 {
		t.Fatalf("expected 2 chains, got %d", len(chains))
	}
	if len(chains[0]) != 3 || chains[0][0] != 0 || chains[0][1] != 1 || chains[0][2] != 3 {
		t.Fatalf("unexpected first chain %v", chains[0])
	}
	if len(chains[1]) != 1 || chains[1][0] != 2 {
		t.Fatalf("unexpected second chain %v", chains[1])
	}
}

func TestChainsFromMatchingCoversAllTrips(t *testing.T) {
	matchL := []int{2, -1, -1}
	chains := chainsFromMatching(3, matchL)
	seen := make(map[int]bool)
	for _, chain := range chains {
		for _, idx := range chain {
			if seen[idx] {
				t.Fatalf("index %d appears twice", idx)
			}
			seen[idx] = true
		}
	}
	if len(seen) != 3 {
		t.Fatalf("expected all 3 indices covered, got %d", len(seen))
	}
}
