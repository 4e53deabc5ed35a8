package mmr3_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/mmr3"
)

func ExampleHash32() {
	fmt.Printf("%#x\n", mmr3.Hash32([]byte("hello"), 0))
	fmt.Println(mmr3.Hash32Signed([]byte("foo"), 0))
	// Output:
	// 0x248bfa47
	// -156908512
}

func ExampleHash128() {
	h := mmr3.Hash128([]byte("foo"), 42)
	fmt.Println(h)
	fmt.Println(h.Signed())
	// Output:
	// 215966891540331383248189432718888555506
	// -124315475380607080215185174712879655950
}

func ExampleHash() {
	_, err := mmr3.HashString(64, "foo", 0, false)
	fmt.Println(err)
	// Output:
	// invalid bits: 64 (must be 32 or 128)
}

func ExampleHashBatch() {
	keys, err := mmr3.NewArray([]string{"foo", "bar", "baz", "hello"}, 2, 2)
	if err != nil {
		panic(err)
	}

	out, err := mmr3.HashBatch(context.Background(), keys, 0)
	if err != nil {
		panic(err)
	}

	v, _ := out.At(1, 1)
	fmt.Println(out.Shape())
	fmt.Printf("%#x\n", v)
	// Output:
	// [2 2]
	// 0x248bfa47
}
