// Package bitmap provides dense bit-packed boolean storage with no knowledge of
// what the bits mean.
package bitmap

import (
	"fmt"
	"math/bits"
)

// WordBits is the number of cells packed into one storage word.
const WordBits = 64

// wordBytes is the size of one storage word in bytes.
const wordBytes = WordBits / 8

// WordsFor returns the number of words needed to hold n bits.
func WordsFor(n int) int {
	if n <= 0 {
		return 0
	}
	return (n-1)/WordBits + 1
}

// BitMap is a zero-indexed sequence of bits. Bit i lives in word i/64 at
// position i%64. A BitMap is a view over its words: copies share storage.
type BitMap struct {
	n     int
	words []uint64
}

// New allocates a BitMap holding n bits, all cleared.
func New(n int) BitMap {
	if n < 0 {
		panic(fmt.Sprintf("bitmap: negative length %d", n))
	}
	return BitMap{n: n, words: make([]uint64, WordsFor(n))}
}

// Len reports the number of addressable bits.
func (b BitMap) Len() int { return b.n }

// Set sets bit i to 1.
func (b BitMap) Set(i int) {
	b.check(i)
	b.words[i/WordBits] |= 1 << uint(i%WordBits)
}

// Clear sets bit i to 0.
func (b BitMap) Clear(i int) {
	b.check(i)
	b.words[i/WordBits] &^= 1 << uint(i%WordBits)
}

// Get reports whether bit i is set.
func (b BitMap) Get(i int) bool {
	b.check(i)
	return b.words[i/WordBits]&(1<<uint(i%WordBits)) != 0
}

// Put sets or clears bit i according to v.
func (b BitMap) Put(i int, v bool) {
	if v {
		b.Set(i)
		return
	}
	b.Clear(i)
}

// Reset clears every bit.
func (b BitMap) Reset() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// Count returns the number of set bits.
func (b BitMap) Count() int {
	total := 0
	for _, w := range b.words {
		total += bits.OnesCount64(w)
	}
	return total
}

// MemoryUsage returns the bytes held by the backing words.
func (b BitMap) MemoryUsage() int { return len(b.words) * wordBytes }

func (b BitMap) check(i int) {
	if debug && (i < 0 || i >= b.n) {
		panic(fmt.Sprintf("bitmap: index %d out of range [0,%d)", i, b.n))
	}
}
