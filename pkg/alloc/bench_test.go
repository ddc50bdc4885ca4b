package alloc

import "testing"

func BenchmarkRequest(b *testing.B) {
	p := NewPool()
	for i := 0; i < b.N; i++ {
		p.Request()
	}
}

func BenchmarkRequestReturn(b *testing.B) {
	p := NewPool()
	for i := 0; i < b.N; i++ {
		id, _ := p.Request()
		if err := p.Return(id); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReturnFragmented(b *testing.B) {
	p := NewPool()
	for i := 0; i < 1<<16; i++ {
		p.Request()
	}
	for id := uint32(1); id < 1<<16; id += 2 {
		p.Return(id)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id, _ := p.Request()
		if err := p.Return(id); err != nil {
			b.Fatal(err)
		}
	}
}
