package t9_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shiroemons/go-t9decode/pkg/t9"
)

func ExampleDecodeString() {
	text, err := t9.DecodeString("44 444 44 444")
	if err != nil {
		panic(err)
	}
	fmt.Println(text)
	// Output: hihi
}

func ExampleDecode() {
	text, err := t9.Decode(strings.NewReader("7777 33 66 3 0 44 33 555 7"))
	if err != nil {
		panic(err)
	}
	fmt.Printf("%q\n", text)
	// Output: "send help"
}

func ExampleDecodeString_error() {
	_, err := t9.DecodeString("77777")
	fmt.Println(errors.Is(err, t9.ErrInvalidRunLength))
	// Output: true
}
