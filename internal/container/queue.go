package container

type node[T any] struct {
	value T
	next  *node[T]
}

// Queue is a FIFO container built on singly linked nodes. Each queue owns
// its nodes exclusively; a dequeued node is unlinked before it is dropped.
type Queue[T any] struct {
	front *node[T]
	back  *node[T]
	size  int
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue appends an item at the back of the queue
func (q *Queue[T]) Enqueue(item T) {
	n := &node[T]{value: item}
	if q.back == nil {
		q.front, q.back = n, n
	} else {
		q.back.next = n
		q.back = n
	}
	q.size++
}

// Dequeue removes and returns the earliest enqueued item. The second result
// is false when the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	if q.front == nil {
		var zero T
		return zero, false
	}
	n := q.front
	q.front = n.next
	if q.front == nil {
		q.back = nil
	}
	n.next = nil
	q.size--
	return n.value, true
}

// Front returns the next item to be dequeued without removing it.
func (q *Queue[T]) Front() (T, bool) {
	if q.front == nil {
		var zero T
		return zero, false
	}
	return q.front.value, true
}

func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

func (q *Queue[T]) Len() int {
	return q.size
}

// Items returns a snapshot of the queue contents in FIFO order.
func (q *Queue[T]) Items() []T {
	items := make([]T, 0, q.size)
	for n := q.front; n != nil; n = n.next {
		items = append(items, n.value)
	}
	return items
}

// Destroy unlinks and releases every node. It is safe on an empty queue.
func (q *Queue[T]) Destroy() {
	for !q.IsEmpty() {
		q.Dequeue()
	}
}
