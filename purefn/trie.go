package purefn

import (
	"sync"
	"sync/atomic"
)

// Trie is a bounded memo table keyed by argument vectors.
//
// It keeps two generations of maps. Stores go to the head generation; once maxSize
// entries have been stored the generations swap and the new head starts empty, so
// entries survive at least one full generation before they are dropped.
type Trie[K comparable, O any] struct {
	mu      sync.Mutex
	memos   [2]atomic.Pointer[sync.Map]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

func NewTrie[K comparable, O any](maxSize uint32) *Trie[K, O] {
	if maxSize == 0 {
		panic("purefn: maxSize should be greater than 0")
	}
	t := &Trie[K, O]{maxSize: maxSize}
	t.memos[0].Store(&sync.Map{})
	t.memos[1].Store(&sync.Map{})
	return t
}

func (t *Trie[K, O]) Load(keys []K) (O, bool) {
	head := t.headIdx.Load()
	for _, idx := range [2]uint32{head, 1 - head} {
		m, ok := t.find(t.memos[idx].Load(), keys)
		if !ok {
			continue
		}
		if v, ok := m.Load(keys[len(keys)-1]); ok {
			return v.(O), true
		}
	}
	var zero O
	return zero, false
}

func (t *Trie[K, O]) Store(keys []K, value O) {
	mustHaveKeys(keys)
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.size.Load() >= t.maxSize {
		head := 1 - t.headIdx.Load()
		t.memos[head].Store(&sync.Map{})
		t.headIdx.Store(head)
		t.size.Store(0)
	}
	m := t.traverse(t.memos[t.headIdx.Load()].Load(), keys)
	m.Store(keys[len(keys)-1], value)
	t.size.Add(1)
}

// Len reports the number of entries in the head generation.
func (t *Trie[K, O]) Len() int {
	return int(t.size.Load())
}

// arityKey roots each key length in its own subtree so that a leaf of a short
// vector never collides with an inner node of a longer one.
type arityKey int

// find walks to the map holding the last key without creating nodes.
func (t *Trie[K, O]) find(m *sync.Map, keys []K) (*sync.Map, bool) {
	mustHaveKeys(keys)
	root, ok := m.Load(arityKey(len(keys)))
	if !ok {
		return nil, false
	}
	m = root.(*sync.Map)
	for _, k := range keys[:len(keys)-1] {
		v, ok := m.Load(k)
		if !ok {
			return nil, false
		}
		m = v.(*sync.Map)
	}
	return m, true
}

func (t *Trie[K, O]) traverse(m *sync.Map, keys []K) *sync.Map {
	root, _ := m.LoadOrStore(arityKey(len(keys)), &sync.Map{})
	m = root.(*sync.Map)
	for _, k := range keys[:len(keys)-1] {
		v, _ := m.LoadOrStore(k, &sync.Map{})
		m = v.(*sync.Map)
	}
	return m
}

func mustHaveKeys[K any](keys []K) {
	if len(keys) == 0 {
		panic("purefn: empty keys")
	}
}
