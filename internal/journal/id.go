package journal

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
	idMu      sync.Mutex
	idEntropy io.Reader
)

func init() {
	// Seed a PRNG from crypto/rand and use ulid.Monotonic so ids created
	// within the same millisecond stay lexicographically increasing.
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	idEntropy = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// NewTradeID returns a time-sortable unique identifier for a trade.
func NewTradeID() string {
	idMu.Lock()
	defer idMu.Unlock()

	id := ulid.MustNew(ulid.Timestamp(time.Now().UTC()), idEntropy)
	return "trade_" + id.String()
}
