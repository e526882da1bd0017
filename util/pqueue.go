package util

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

//*******************************************
// priority queue
//*******************************************

type PriorityQueue[T any, P constraints.Ordered] struct {
	items *_PQItems[T, P]
}

func NewPriorityQueue[T any, P constraints.Ordered](cap int) PriorityQueue[T, P] {
	items := _PQItems[T, P](make([]Tuple[T, P], 0, cap))
	return PriorityQueue[T, P]{
		items: &items,
	}
}

func (self *PriorityQueue[T, P]) Enqueue(value T, priority P) {
	heap.Push(self.items, MakeTuple(value, priority))
}

func (self *PriorityQueue[T, P]) Dequeue() (T, bool) {
	if self.items.Len() == 0 {
		var t T
		return t, false
	}
	item := heap.Pop(self.items).(Tuple[T, P])
	return item.A, true
}

func (self *PriorityQueue[T, P]) Length() int {
	return self.items.Len()
}

type _PQItems[T any, P constraints.Ordered] []Tuple[T, P]

func (self _PQItems[T, P]) Len() int {
	return len(self)
}
func (self _PQItems[T, P]) Less(i, j int) bool {
	return self[i].B < self[j].B
}
func (self _PQItems[T, P]) Swap(i, j int) {
	self[i], self[j] = self[j], self[i]
}
func (self *_PQItems[T, P]) Push(item any) {
	*self = append(*self, item.(Tuple[T, P]))
}
func (self *_PQItems[T, P]) Pop() any {
	old := *self
	n := len(old)
	item := old[n-1]
	*self = old[:n-1]
	return item
}
