package interngo_test

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/hupe1980/interngo"
)

// Example demonstrates interning with the package-level API.
func Example() {
	a := interngo.Intern(interngo.String("example-alpha"))
	b := interngo.Intern(interngo.String("example-alpha"))

	fmt.Println(a == b)
	fmt.Println(a.Value())

	a.Release()
	b.Release()
	// Output:
	// true
	// example-alpha
}

// Example_gc demonstrates reclaiming unreferenced slots with a sweep.
func Example_gc() {
	s := interngo.NewStore()
	p := interngo.PoolOf[interngo.String](s)

	held := p.Intern("held")
	p.Intern("dropped").Release()

	fmt.Println("before:", s.Len())
	fmt.Println("reclaimed:", s.GC())
	fmt.Println("after:", s.Len())
	fmt.Println("held survives:", held.Value())
	// Output:
	// before: 2
	// reclaimed: 1
	// after: 1
	// held survives: held
}

// Example_clone demonstrates cheap handle duplication and share counts.
func Example_clone() {
	s := interngo.NewStore()
	p := interngo.PoolOf[interngo.String](s)

	h := p.Intern("shared")
	c := h.Clone()

	fmt.Println(h == c)
	fmt.Println(h.Refs()) // pool hold + h + c

	c.Release()
	fmt.Println(h.Refs())
	// Output:
	// true
	// 3
	// 2
}

// point is an internable custom type: it feeds its identity bytes to the
// store's fixed hash.
type point struct {
	X, Y int64
}

func (p point) WriteHash(d *xxhash.Digest) {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(p.X))
	binary.LittleEndian.PutUint64(buf[8:], uint64(p.Y))
	_, _ = d.Write(buf[:])
}

func (p point) Equal(other point) bool {
	return p == other
}

// Example_customType demonstrates interning a user-defined type.
func Example_customType() {
	s := interngo.NewStore()
	p := interngo.PoolOf[point](s)

	a := p.Intern(point{X: 3, Y: 4})
	b := p.Intern(point{X: 3, Y: 4})

	fmt.Println(a == b)
	fmt.Println(a.Value())
	// Output:
	// true
	// {3 4}
}
