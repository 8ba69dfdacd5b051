package xipset

import (
	"testing"
)

// FuzzFromBlobRoundTrip 验证集合的文本往返不变量：
// 任何可成功构造的 blob，Generate 后再 FromBlob 得到相同的条目序列。
func FuzzFromBlobRoundTrip(f *testing.F) {
	f.Add("1.1.1.1\n2.2.0.0/16\n")
	f.Add("# comment\n10.0.0.0/8\n10.0.0.1\n")
	f.Add("2001:db8::/32\n::1\n")
	f.Add("")
	f.Add("not-an-ip\n")

	f.Fuzz(func(t *testing.T, blob string) {
		s, err := FromBlob(blob, Opts{})
		if err != nil {
			return
		}
		regenerated := s.Generate()
		s2, err := FromBlob(regenerated, Opts{})
		if err != nil {
			t.Fatalf("re-reading generated blob failed: %v\nblob: %q", err, regenerated)
		}
		a, b := s.Entries(), s2.Entries()
		if len(a) != len(b) {
			t.Fatalf("entry count changed across round-trip: %d != %d", len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("entry %d changed across round-trip: %q != %q", i, a[i], b[i])
			}
		}
		if s.Fingerprint() != s2.Fingerprint() {
			t.Fatal("fingerprint changed across round-trip")
		}
	})
}

// FuzzContainsNeverPanics 验证 Contains 对任意输入都不 panic 且
// 对无法解析的输入返回 false。
func FuzzContainsNeverPanics(f *testing.F) {
	f.Add("10.1.2.3")
	f.Add("::ffff:10.1.2.3")
	f.Add("garbage")
	f.Add("")

	s, err := New([]string{"10.0.0.0/8", "2001:db8::/32", "1.1.1.1"}, Opts{})
	if err != nil {
		f.Fatal(err)
	}

	f.Fuzz(func(t *testing.T, ip string) {
		_ = s.Contains(ip)
	})
}
