package internal

import (
	"bytes"
	"sync"
)

// BufferPool holds scratch buffers for encoding and decoding events.
var BufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer([]byte{})
	},
}
