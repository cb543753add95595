package store

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EncodeVector packs an embedding into the persisted blob layout:
// little-endian 32-bit floats, byte length = dimension * 4. DecodeVector
// reverses it bit-exactly.
func EncodeVector(vec []float32) []byte {
	buf := make([]byte, 4*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

func DecodeVector(blob []byte) ([]float32, error) {
	if len(blob)%4 != 0 {
		return nil, fmt.Errorf("embedding blob length %d is not a multiple of 4", len(blob))
	}
	vec := make([]float32, len(blob)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(blob[i*4:]))
	}
	return vec, nil
}

// cosineSimilarity computes dot(q,d)/(|q|*|d|), accumulating in float64
// to avoid cancellation on near-duplicate vectors. Returns 0 when either
// vector has zero norm.
func cosineSimilarity(q, d []float32) float32 {
	n := len(q)
	if len(d) < n {
		n = len(d)
	}
	var dot, qNorm, dNorm float64
	for i := 0; i < n; i++ {
		dot += float64(q[i]) * float64(d[i])
		qNorm += float64(q[i]) * float64(q[i])
		dNorm += float64(d[i]) * float64(d[i])
	}
	if qNorm == 0 || dNorm == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(qNorm) * math.Sqrt(dNorm)))
}
