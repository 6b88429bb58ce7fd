// Package input 将 ebiten 的指针输入转换为特效系统使用的指针移动事件
package input

import (
	"sort"

	"github.com/aquabot/firstmate/pkg/effects"
)

// PointerBus 指针移动事件总线
//
// 监听器按订阅顺序依次调用；在派发过程中退订是安全的，
// 被退订的监听器不会再收到本次及之后的事件。
type PointerBus struct {
	listeners map[uint64]func(effects.Point)
	nextID    uint64
}

// NewPointerBus 创建空的事件总线
func NewPointerBus() *PointerBus {
	return &PointerBus{
		listeners: make(map[uint64]func(effects.Point)),
	}
}

// Subscribe 注册监听器，返回的函数用于退订（可重复调用）
func (b *PointerBus) Subscribe(fn func(effects.Point)) func() {
	b.nextID++
	id := b.nextID
	b.listeners[id] = fn
	return func() {
		delete(b.listeners, id)
	}
}

// Dispatch 向所有监听器派发一次指针移动事件
func (b *PointerBus) Dispatch(p effects.Point) {
	ids := make([]uint64, 0, len(b.listeners))
	for id := range b.listeners {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if fn, ok := b.listeners[id]; ok {
			fn(p)
		}
	}
}

// Listeners 返回当前监听器数量
func (b *PointerBus) Listeners() int {
	return len(b.listeners)
}
