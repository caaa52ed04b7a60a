package events

// Queue 先进先出的指针事件队列
type Queue struct {
	items []PointerEvent
}

// NewQueue 创建空队列
func NewQueue() *Queue {
	return &Queue{}
}

// Push 追加事件
func (q *Queue) Push(evt PointerEvent) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain 取出全部事件并清空队列
func (q *Queue) Drain() []PointerEvent {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len 返回排队中的事件数量
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
