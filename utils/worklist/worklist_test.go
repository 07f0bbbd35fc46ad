package worklist

import "testing"

func TestFIFO(t *testing.T) {
	popped := []int{}
	Start(0, func(next int, add func(int)) {
		popped = append(popped, next)
		if next < 3 {
			add(next + 1)
		}
	})

	if len(popped) != 4 {
		t.Fatalf("processed %v, expected [0 1 2 3]", popped)
	}
	for i, n := range popped {
		if n != i {
			t.Errorf("processed %v, expected [0 1 2 3]", popped)
			break
		}
	}
}

func TestStartV(t *testing.T) {
	order := []string{}
	StartV([]string{"a", "b"}, func(next string, add func(string)) {
		order = append(order, next)
		if next == "a" {
			add("c")
		}
	})

	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("processed %v, expected seeds before additions", order)
	}
}
