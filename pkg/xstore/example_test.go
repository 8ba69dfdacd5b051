package xstore_test

import (
	"fmt"
	"os"

	"github.com/omeyang/ipkit/pkg/xstore"
)

func ExampleFileStore() {
	dir, err := os.MkdirTemp("", "xstore-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	store, err := xstore.Open(dir)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if err := store.Save("edge.list", []byte("10.0.0.0/8\n1.1.1.1\n")); err != nil {
		fmt.Println("error:", err)
		return
	}

	data, err := store.Read("edge.list")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(string(data))

	if err := store.Remove("edge.list"); err != nil {
		fmt.Println("error:", err)
		return
	}
	// Output:
	// 10.0.0.0/8
	// 1.1.1.1
}
