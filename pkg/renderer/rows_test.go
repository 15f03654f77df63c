package renderer

import (
	"sync"
	"testing"
)

func TestRowScheduler_Sequential(t *testing.T) {
	rs := NewRowScheduler(65, 30)

	expected := []RowRange{{0, 30}, {30, 60}, {60, 65}}
	for i, want := range expected {
		got, ok := rs.Next()
		if !ok {
			t.Fatalf("Range %d: expected %v, scheduler was exhausted", i, want)
		}
		if got != want {
			t.Errorf("Range %d: expected %v, got %v", i, want, got)
		}
	}

	for i := 0; i < 3; i++ {
		if got, ok := rs.Next(); ok {
			t.Errorf("Expected exhausted scheduler, got %v", got)
		}
	}
}

func TestRowScheduler_EveryRowExactlyOnce(t *testing.T) {
	heights := []int{0, 1, 29, 30, 31, 100, 599, 600}
	strides := []int{1, 7, 30, 1000}
	goroutines := []int{1, 4, 16}

	for _, height := range heights {
		for _, stride := range strides {
			for _, numGoroutines := range goroutines {
				rs := NewRowScheduler(height, stride)
				claimed := make([][]RowRange, numGoroutines)

				var wg sync.WaitGroup
				for g := 0; g < numGoroutines; g++ {
					wg.Add(1)
					go func(g int) {
						defer wg.Done()
						for {
							r, ok := rs.Next()
							if !ok {
								return
							}
							claimed[g] = append(claimed[g], r)
						}
					}(g)
				}
				wg.Wait()

				counts := make([]int, height)
				for _, ranges := range claimed {
					for _, r := range ranges {
						if r.Start < 0 || r.End > height || r.Start >= r.End {
							t.Fatalf("H=%d S=%d G=%d: invalid range %v", height, stride, numGoroutines, r)
						}
						if r.Rows() > stride {
							t.Errorf("H=%d S=%d G=%d: range %v larger than stride", height, stride, numGoroutines, r)
						}
						for row := r.Start; row < r.End; row++ {
							counts[row]++
						}
					}
				}

				for row, count := range counts {
					if count != 1 {
						t.Errorf("H=%d S=%d G=%d: row %d claimed %d times", height, stride, numGoroutines, row, count)
					}
				}
			}
		}
	}
}
