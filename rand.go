package troll

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"
	"time"
)

var (
	defaultMu  sync.Mutex
	defaultEnv *Env
)

// NewSeed reads a seed from crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Default returns the Env used by Evaluate, creating it on first use with
// a seed from NewSeed.
func Default() *Env {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultEnv == nil {
		seed, err := NewSeed()
		if err != nil {
			seed = time.Now().UnixNano()
		}
		defaultEnv = NewEnv(seed)
	}
	return defaultEnv
}

// Seed replaces the default Env with one seeded by seed.
func Seed(seed int64) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultEnv = NewEnv(seed)
}
