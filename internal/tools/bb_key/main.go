// bb_key decodes an encoded Bendy Butt message file and prints its message
// key, CID, sequence number and first-message flag.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/ssb-ngi-pointer/go-bendy-butt/bendybutt"
)

func run(args []string, out, errOut io.Writer) int {
	flagSet := pflag.NewFlagSet("bb_key", pflag.ContinueOnError)
	flagSet.SetOutput(errOut)
	keyOnly := flagSet.BoolP("key-only", "k", false, "print only the message key")
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if flagSet.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: bb_key [--key-only] <message.bb>")
		return 2
	}

	b, err := os.ReadFile(flagSet.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read: %v\n", err)
		return 1
	}
	msg, err := bendybutt.Decode(b)
	if err != nil {
		fmt.Fprintf(errOut, "decode: %v\n", err)
		return 1
	}
	key, err := bendybutt.MessageKey(b)
	if err != nil {
		fmt.Fprintf(errOut, "key: %v\n", err)
		return 1
	}
	if *keyOnly {
		fmt.Fprintln(out, key)
		return 0
	}
	cid, err := bendybutt.CID(b)
	if err != nil {
		fmt.Fprintf(errOut, "cid: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "key=%s\ncid=%s\nsequence=%d\nfirst=%t\n", key, cid, msg.Sequence, msg.IsFirst())
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
