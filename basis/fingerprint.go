package basis

import (
	"bytes"
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// Fingerprint returns a stable content hash of a grid. Two grids have equal
// fingerprints exactly when they are bit-identical sequences, which makes
// the determinism of Grid directly checkable.
func Fingerprint(points []float64) [32]byte {
	hasher := blake3.New()
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.BigEndian, uint64(len(points)))
	binary.Write(buf, binary.BigEndian, points)
	hasher.Write(buf.Bytes())

	var fp [32]byte
	copy(fp[:], hasher.Sum(nil))
	return fp
}
