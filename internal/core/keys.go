package core

import "time"

type heldKey struct {
	dir      int
	seq      uint64
	last     time.Time
	repeated bool // Pressed again while it was the newest key
}

// KeySet tracks every held direction key separately.
// The resolved direction belongs to the most recently pressed key that is
// still held, so releasing one key while another is down falls back to the
// other instead of stopping.
type KeySet struct {
	held map[string]heldKey
	seq  uint64
}

// NewKeySet creates an empty key set.
func NewKeySet() *KeySet {
	return &KeySet{held: make(map[string]heldKey)}
}

// Press marks key as held with direction dir (-1 or +1) and makes it the
// newest key. Pressing the newest key again counts as auto-repeat; pressing
// an older held key is a fresh press, since terminals only repeat the last
// key pressed.
func (k *KeySet) Press(key string, dir int, now time.Time) {
	if k.held == nil {
		k.held = make(map[string]heldKey)
	}
	h, ok := k.held[key]
	repeated := ok && h.seq == k.seq
	k.seq++
	k.held[key] = heldKey{dir: dir, seq: k.seq, last: now, repeated: repeated}
}

// Release drops key from the set. Unknown keys are ignored.
func (k *KeySet) Release(key string) {
	delete(k.held, key)
}

// ReleaseAll empties the set.
func (k *KeySet) ReleaseAll() {
	for key := range k.held {
		delete(k.held, key)
	}
}

// Expire releases keys that have gone quiet. Terminals never report key-up,
// so auto-repeat gaps stand in for it: a key waits up to initial for its
// first repeat, then up to repeat between repeats.
// Keys pressed with a zero time never expire.
func (k *KeySet) Expire(now time.Time, initial, repeat time.Duration) {
	for key, h := range k.held {
		if h.last.IsZero() {
			continue
		}
		timeout := initial
		if h.repeated {
			timeout = repeat
		}
		if now.Sub(h.last) > timeout {
			delete(k.held, key)
		}
	}
}

// Held reports whether key is currently down.
func (k *KeySet) Held(key string) bool {
	_, ok := k.held[key]
	return ok
}

// Direction returns the resolved horizontal signal: -1, 0 or +1.
func (k *KeySet) Direction() int {
	var best heldKey
	for _, h := range k.held {
		if h.seq > best.seq {
			best = h
		}
	}
	return best.dir
}
