package store

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	idMu   sync.Mutex
	idRand io.Reader = monotonicEntropy()
)

func monotonicEntropy() io.Reader {
	// Seed from crypto/rand so IDs are unpredictable; ulid.Monotonic keeps
	// IDs generated within the same millisecond strictly increasing.
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// newID returns the key for a new series record: a ULID, which sorts
// lexicographically by generation time, so `ORDER BY id DESC` in List is
// also newest-fetch-first without a separate timestamp index.
func newID() string {
	idMu.Lock()
	defer idMu.Unlock()

	rec, err := ulid.New(ulid.Timestamp(time.Now().UTC()), idRand)
	if err != nil {
		// Only possible if time goes backwards or entropy fails.
		panic(err)
	}
	return rec.String()
}
