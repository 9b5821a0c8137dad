package queue_test

import (
	"testing"

	"github.com/stateforward/go-act/queue"
)

func TestQueue(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		q := queue.New[string]()
		if q.Len() != 0 {
			t.Errorf("Expected empty queue, got %d", q.Len())
		}
		if _, ok := q.Pop(); ok {
			t.Error("Expected Pop on empty queue to fail")
		}
	})

	t.Run("FIFO", func(t *testing.T) {
		q := queue.New[int](4)
		q.Push(1, 2)
		q.Push(3)
		if q.Len() != 3 {
			t.Errorf("Expected length 3, got %d", q.Len())
		}
		for _, expected := range []int{1, 2, 3} {
			item, ok := q.Pop()
			if !ok {
				t.Fatalf("Expected item %d, queue was empty", expected)
			}
			if item != expected {
				t.Errorf("Expected %d, got %d", expected, item)
			}
		}
		if q.Len() != 0 {
			t.Errorf("Expected drained queue, got %d", q.Len())
		}
	})

	t.Run("Clear", func(t *testing.T) {
		q := queue.New[string]()
		q.Push("a", "b")
		if n := q.Clear(); n != 2 {
			t.Errorf("Expected 2 cleared items, got %d", n)
		}
		if q.Len() != 0 {
			t.Errorf("Expected empty queue, got %d", q.Len())
		}
		q.Push("c")
		if item, ok := q.Pop(); !ok || item != "c" {
			t.Errorf("Expected c after clear, got %q", item)
		}
	})
}
