package xaddr

import "testing"

func BenchmarkParseIPv4(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse("192.168.1.1"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseIPv6(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse("2001:db8::1"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseCIDR(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse("10.0.0.0/8"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseInvalid(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse("300.1.2.3"); err == nil {
			b.Fatal("expected error")
		}
	}
}

func BenchmarkEntryContains(b *testing.B) {
	r := MustParse("10.0.0.0/8")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Contains("10.200.1.1")
	}
}

func BenchmarkClassify(b *testing.B) {
	e := MustParse("192.168.1.1")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Classify(e)
	}
}
