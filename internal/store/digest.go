package store

import "golang.org/x/crypto/blake2b"

// digest identifies a backing file's content as of a point in time.
type digest [blake2b.Size256]byte

func digestOf(b []byte) digest { return blake2b.Sum256(b) }
