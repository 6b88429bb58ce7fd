package effects

// recordingTarget 记录所有插入和移除操作的测试用渲染目标
type recordingTarget struct {
	next      NodeID
	particles []Particle
	replaces  int
	glitter   map[NodeID]Glitter
	sparkles  map[NodeID]Sparkle
	added     []NodeID
	removed   []NodeID
}

func newRecordingTarget() *recordingTarget {
	return &recordingTarget{
		glitter:  make(map[NodeID]Glitter),
		sparkles: make(map[NodeID]Sparkle),
	}
}

func (r *recordingTarget) ReplaceParticles(particles []Particle) {
	r.particles = append([]Particle(nil), particles...)
	r.replaces++
}

func (r *recordingTarget) AddGlitter(g Glitter) NodeID {
	r.next++
	r.glitter[r.next] = g
	r.added = append(r.added, r.next)
	return r.next
}

func (r *recordingTarget) AddSparkle(s Sparkle) NodeID {
	r.next++
	r.sparkles[r.next] = s
	r.added = append(r.added, r.next)
	return r.next
}

func (r *recordingTarget) Remove(id NodeID) {
	if _, ok := r.glitter[id]; ok {
		delete(r.glitter, id)
		r.removed = append(r.removed, id)
		return
	}
	if _, ok := r.sparkles[id]; ok {
		delete(r.sparkles, id)
		r.removed = append(r.removed, id)
	}
}

// fakePointer 可手动派发事件的指针源
type fakePointer struct {
	listeners  map[int]func(Point)
	next       int
	subscribes int
}

func newFakePointer() *fakePointer {
	return &fakePointer{listeners: make(map[int]func(Point))}
}

func (f *fakePointer) Subscribe(fn func(Point)) func() {
	f.next++
	id := f.next
	f.listeners[id] = fn
	f.subscribes++
	return func() { delete(f.listeners, id) }
}

func (f *fakePointer) Dispatch(p Point) {
	for _, fn := range f.listeners {
		fn(p)
	}
}
