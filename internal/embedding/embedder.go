// Package embedding is the third classification stage: nearest-prototype
// matching in an embedding space built from the taxonomy's example phrases.
// The stage is deliberately model-agnostic; anything that can turn text into
// fixed-width vectors plugs in through the Embedder interface.
package embedding

import (
	"hash/fnv"
	"math"
	"strings"
)

// Embedder turns texts into fixed-width vectors. Implementations must be safe
// for concurrent use.
type Embedder interface {
	Embed(texts []string) ([][]float64, error)
	Dim() int
}

// HashingEmbedder is a deterministic character n-gram embedder. Each 3- and
// 4-gram is hashed into one of Dim buckets with a signed contribution, and
// the final vector is L2-normalized so dot products are cosine similarities.
// It needs no model download and gives stable, reproducible vectors, which is
// what the offline pipeline and the tests want.
type HashingEmbedder struct {
	dim int
}

// NewHashingEmbedder returns an embedder with the given vector width. Widths
// below 64 are raised to 64 so n-grams do not collide excessively.
func NewHashingEmbedder(dim int) *HashingEmbedder {
	if dim < 64 {
		dim = 64
	}
	return &HashingEmbedder{dim: dim}
}

func (e *HashingEmbedder) Dim() int { return e.dim }

// Embed vectorizes the texts. It never fails; the error is part of the
// interface for implementations that call external services.
func (e *HashingEmbedder) Embed(texts []string) ([][]float64, error) {
	out := make([][]float64, len(texts))
	for i, t := range texts {
		out[i] = e.embedOne(t)
	}
	return out, nil
}

func (e *HashingEmbedder) embedOne(text string) []float64 {
	vec := make([]float64, e.dim)
	t := " " + strings.ToLower(strings.TrimSpace(text)) + " "

	for _, n := range []int{3, 4} {
		if len(t) < n {
			continue
		}
		for i := 0; i+n <= len(t); i++ {
			h := fnv.New32a()
			h.Write([]byte(t[i : i+n]))
			sum := h.Sum32()
			idx := int(sum>>1) % e.dim
			if sum&1 == 0 {
				vec[idx]++
			} else {
				vec[idx]--
			}
		}
	}

	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}
