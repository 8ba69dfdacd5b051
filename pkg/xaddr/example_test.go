package xaddr_test

import (
	"errors"
	"fmt"

	"github.com/omeyang/ipkit/pkg/xaddr"
)

func ExampleParse() {
	e, err := xaddr.Parse("10.0.0.5")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(e.IsValid())
	fmt.Println(e.Version())
	fmt.Println(e.IsPrivate())
	fmt.Println(e.IsGlobalUnicast())
	// Output:
	// true
	// IPv4
	// true
	// true
}

func ExampleParse_invalid() {
	_, err := xaddr.Parse("300.1.2.3")
	fmt.Println(errors.Is(err, xaddr.ErrInvalidAddress))
	// Output:
	// true
}

func ExampleEntry_Contains() {
	r := xaddr.MustParse("1.1.0.0/16")
	fmt.Println(r.Contains("1.1.5.5"))
	fmt.Println(r.Contains("1.2.0.0"))
	fmt.Println(r.Contains("not-an-ip"))
	// Output:
	// true
	// false
	// false
}

func ExampleEntry_NetworkBits() {
	e := xaddr.MustParse("1.1.1.1")
	p, err := e.NetworkBits(16)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.Addr())
	fmt.Println(p)
	// Output:
	// 1.1.0.0
	// 1.1.0.0/16
}

func ExampleEntry_DefaultMask() {
	mask, err := xaddr.MustParse("192.168.1.1").DefaultMask()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(mask)

	_, err = xaddr.MustParse("2001:db8::1").DefaultMask()
	fmt.Println(errors.Is(err, xaddr.ErrUnsupportedFamily))
	// Output:
	// 255.255.255.0
	// true
}

func ExampleClassify() {
	c := xaddr.Classify(xaddr.MustParse("127.0.0.1"))
	fmt.Println(c.String())
	fmt.Println(c.IsLoopback)
	// Output:
	// loopback
	// true
}
