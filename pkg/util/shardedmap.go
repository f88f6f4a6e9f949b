package util

import "sync"

const defaultShardCount = 32

// ShardedMap is an int-keyed hash map partitioned across independently
// locked shards.  Writers to different keys mostly proceed in parallel;
// writers to the same key serialize on that key's shard lock, which makes
// read-modify-write updates atomic per key.
type ShardedMap[V any] struct {
	shards []mapShard[V]
}

type mapShard[V any] struct {
	mu sync.Mutex
	m  map[int]V
}

// NewShardedMap returns a map with the given shard count, rounded up to a
// power of two.  A non-positive count selects a default.
func NewShardedMap[V any](shardCount int) *ShardedMap[V] {
	if shardCount <= 0 {
		shardCount = defaultShardCount
	}
	n := 1
	for n < shardCount {
		n <<= 1
	}
	m := &ShardedMap[V]{shards: make([]mapShard[V], n)}
	for i := range m.shards {
		m.shards[i].m = map[int]V{}
	}
	return m
}

func (m *ShardedMap[V]) shard(key int) *mapShard[V] {
	return &m.shards[key&(len(m.shards)-1)]
}

// Update replaces the value under key with f's return.
// f receives the current value and whether the key was present;
// the whole read-modify-write runs under the shard lock.
func (m *ShardedMap[V]) Update(key int, f func(old V, ok bool) V) {
	s := m.shard(key)
	s.mu.Lock()
	old, ok := s.m[key]
	s.m[key] = f(old, ok)
	s.mu.Unlock()
}

// Load returns the value stored under key, if any.
func (m *ShardedMap[V]) Load(key int) (value V, ok bool) {
	s := m.shard(key)
	s.mu.Lock()
	value, ok = s.m[key]
	s.mu.Unlock()
	return
}

// Store sets the value under key.
func (m *ShardedMap[V]) Store(key int, value V) {
	s := m.shard(key)
	s.mu.Lock()
	s.m[key] = value
	s.mu.Unlock()
}

// Len returns the number of stored keys.
func (m *ShardedMap[V]) Len() (n int) {
	for i := range m.shards {
		s := &m.shards[i]
		s.mu.Lock()
		n += len(s.m)
		s.mu.Unlock()
	}
	return
}

// Range calls f for every key/value pair until f returns false.
// Each shard is locked only while being walked, so Range sees no
// consistent snapshot across shards.
func (m *ShardedMap[V]) Range(f func(key int, value V) bool) {
	for i := range m.shards {
		s := &m.shards[i]
		s.mu.Lock()
		for k, v := range s.m {
			if !f(k, v) {
				s.mu.Unlock()
				return
			}
		}
		s.mu.Unlock()
	}
}
