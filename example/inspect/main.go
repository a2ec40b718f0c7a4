// Command inspect decodes a hex dump of a Gravity contract account
// and prints the stored state.
//
// The input is the raw 138-byte account data as produced by the host
// runtime, hex-encoded:
//
//	inspect 0100000000...
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/gravity-tech/gravity-adapter/types"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: inspect <hex-encoded account data>")
		os.Exit(2)
	}

	raw, err := hex.DecodeString(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "inspect: bad hex input: %v\n", err)
		os.Exit(1)
	}

	state, err := types.UnpackContractState(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "inspect: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(state)
	for i, consul := range state.Consuls {
		fmt.Printf("consul %d: %s\n", i, consul)
	}
}
