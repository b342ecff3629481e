// bbvector_gen writes the Bendy Butt conformance vectors under
// testdata/conformance/bendybutt/v1: canonical encodings with their message
// keys and CIDs, plus non-canonical variants that decoders must reject.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/ssb-ngi-pointer/go-bendy-butt/bendybutt"
)

const (
	msgKey  = "%H3MlLmVPVgHU6rBSzautUBZibDttkI+cU4lAFUIM8Ag=.bbmsg-v1"
	feed    = "@6CAxOI3f+LUOVrbAl0IemqiS7ATpQvr9Mdw9LC4+Uv0=.bbfeed-v1"
	nonce   = "Kvgsd74a1BJbeUlxsuCjzkEKm8IuQ/IBWNkUgNiu1Mc="
	feedSig = "K1PgBYX64NUB6bBzcfu4BPEJtjl/Y+PZx7h/y94k6OjqCR9dIHXzjdiM4P7terusbSO464spYjz/LwvP4nqzAg==.sig.ed25519"
	sig     = "F/XZ1uOwXNLKSHynxIvV/FUW1Fd9hIqxJw8TgTbMlf39SbVTwdRPdgxZxp9DoaMIj2yEfm14O0L9kcQJCIW2Cg==.sig.ed25519"
	box2    = "WQyfhDDHQ1gH34uppHbj8SldRu8hD2764gQ6TAhaVp6R01EMBnJQj5ewD5F+UT5NwvV91uU8q5XCjuvcP4ihCJ0RtX8HjKyN+tDKP5gKB3UZo/eO/rP5CcPGoIG7pcLBsd3DQbZLfTnb/iqECEji9gclNcGENTS2u6aATwbQ4uQ7RzIAKKT2NfC2qk86p/gXC2owDFAazuPlQTT8DMNvO8G52gb48a75CGKsDAevrC//Bz38VFxwUiTKzRWaxCbTK9knj39u3qoCP9VLyyRqITgNwvlGLP7ndchTyBiO0TPNkb9PAOenw5WBjyWhA61hpG+VkKpkaysBVGjXYv8OpV1HGbs87TI79uT7JrNV4wEZiwqGknwmCi5B2gbd7tav8yDXsK5yQgDncHQjZotsBFX2adP7Jli9WmvV3xX5lL3kBNKV0ZiE/DZUgB2m1OXvCjNI4fuZhnpZpEQi9coO+icrirKiH/UA8TS9HI72cIbkEJVxOTnKnsgr3Qc/5HhtRS17a54ymVmBsnpP+KqqCqKLN50TInb7qoUlvQ2nw07xX3Ig9usLb8Ik8U8XMb6SLqACxlZN/qW4EJzxVetoIk84AU1yLInK6v9dzfsewRYBXW8+lYbyxVNuIIK4pKYsx2WbjuJyZHgjgbCdGf/kjqP5rDs4zwqj2lmkO70PoEUrcSi46J2hkqtcrd1yl+F3/BDwFlxAXH+x4+LhmT7g+BSgzRUbWvCyeB+HJaoao6g4K/Fs8HxnbVB1zW761OQJaQnV86ZThkvUjXh2SEBlBd+D94eUCqIJkjI7RLt+D/0gxg/D7u1Zq14UxRijZryB51An7GdXtEc2xhU+Bh/aPmKmMZ9D/ArdglSlnVUD8OIBVVw5jtooGlhxbOFHM4N5SoAO/yWPcbcuQz7t4SPij358rY574DLBGZEPCrS6KPpnrlqlnZK4f6/+9zv3hfzNTXVvJtxZL/rvmNvbgh7LpMnSqjnsXqm86a3GXeVWD83TdCnL1oPqEi/8RItTrjy01DmVhUoV6t12STP4mHb8RjR+/ks+7lowfV3HQ13n6if0g0/u+Bzv6XXOX6iePPOHA3lFv2MSPKf9JZ0uQiqajR03YkNE8YnSTYu0Io1cGPZ/lWBp2tyWtwFmGtqw/9+O165tJhrdU2EXJ4T/XP136WpLD2+vtYsx3Xr5lfeD12/g+I/6jwduqTuHpst2tqvcSWoZ4DAWcpcKJ1mUbJU3/mLAYGwWb3XuqMOgJOLoztAwd5xFzUZD1MnR/iyYoZ2weYTSOz3OKR3cJyCjxBhIGaX5xpAc61K1dXNfERBJr9TS0mL2578dd5AauE6Ksn6YlGxNJIVC3VpdAtRbVHNX1g==.box2"
)

type vector struct {
	name string
	msg  bendybutt.Msg
}

func vectors() []vector {
	return []vector{
		{"first_feed", bendybutt.Msg{
			Previous:  bendybutt.NoPrevious,
			Author:    feed,
			Sequence:  1,
			Timestamp: 0,
			Signature: sig,
			Content: bendybutt.Feed{
				Data:      bendybutt.FeedData{FeedType: "bendybutt/v1", Subfeed: "@sub1", Metafeed: "@meta1", Nonce: "n0nce"},
				Signature: "sig1",
			},
		}},
		{"private_box2", bendybutt.Msg{
			Previous:  msgKey,
			Author:    feed,
			Sequence:  2,
			Timestamp: 1,
			Signature: sig,
			Content:   bendybutt.Private{Ciphertext: box2},
		}},
		{"metafeed_add", bendybutt.Msg{
			Previous:  msgKey,
			Author:    feed,
			Sequence:  2,
			Timestamp: 1,
			Signature: sig,
			Content: bendybutt.Feed{
				Data:      bendybutt.FeedData{FeedType: "metafeed/add", Subfeed: feed, Metafeed: feed, Nonce: nonce},
				Signature: feedSig,
			},
		}},
	}
}

// noncanonical derives rejected variants from the first vector's bytes.
func noncanonical(canon []byte) (map[string][]byte, error) {
	out := map[string][]byte{}

	// previous: message tag with an empty id instead of BFE nil.
	prev := bytes.Replace(canon, []byte("2:\x06\x02"), []byte("2:\x01\x04"), 1)
	if bytes.Equal(prev, canon) {
		return nil, errors.New("nil previous not found")
	}
	out["noncanonical_previous_empty_id"] = prev

	// author: bbfeed-v1 identifier tagged with the ed25519 format.
	author := bytes.Replace(canon, []byte("\x00\x03"+feed), []byte("\x00\x00"+feed), 1)
	if bytes.Equal(author, canon) {
		return nil, errors.New("author not found")
	}
	out["noncanonical_author_format"] = author

	out["noncanonical_trailing"] = append(append([]byte(nil), canon...), '\n')
	return out, nil
}

func writeFile(dir, name string, b []byte) error {
	return os.WriteFile(filepath.Join(dir, name), b, 0o644)
}

func run(args []string, out, errOut io.Writer) int {
	flagSet := pflag.NewFlagSet("bbvector_gen", pflag.ContinueOnError)
	flagSet.SetOutput(errOut)
	dir := flagSet.String("out", filepath.Join("testdata", "conformance", "bendybutt", "v1"), "output directory")
	check := flagSet.Bool("check", false, "compare against existing files instead of writing")
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if !*check {
		if err := os.MkdirAll(*dir, 0o755); err != nil {
			fmt.Fprintf(errOut, "mkdir: %v\n", err)
			return 1
		}
	}

	files := map[string][]byte{}
	for i, v := range vectors() {
		b, key, err := bendybutt.EncodeWithKey(v.msg)
		if err != nil {
			fmt.Fprintf(errOut, "%s: encode: %v\n", v.name, err)
			return 1
		}
		cid, err := bendybutt.CID(b)
		if err != nil {
			fmt.Fprintf(errOut, "%s: cid: %v\n", v.name, err)
			return 1
		}
		files[v.name+".bb"] = b
		files[v.name+".key"] = []byte(key + "\n")
		files[v.name+".cid"] = []byte(cid + "\n")
		fmt.Fprintf(out, "%s key=%s cid=%s\n", v.name, key, cid)

		if i == 0 {
			variants, err := noncanonical(b)
			if err != nil {
				fmt.Fprintf(errOut, "%s: %v\n", v.name, err)
				return 1
			}
			for suffix, vb := range variants {
				if _, err := bendybutt.Decode(vb); err == nil {
					fmt.Fprintf(errOut, "%s.%s: variant decoded\n", v.name, suffix)
					return 1
				}
				files[v.name+"."+suffix+".bb"] = vb
			}
		}
	}

	status := 0
	for name, b := range files {
		if *check {
			have, err := os.ReadFile(filepath.Join(*dir, name))
			if err != nil || !bytes.Equal(have, b) {
				fmt.Fprintf(errOut, "%s: stale\n", name)
				status = 1
			}
			continue
		}
		if err := writeFile(*dir, name, b); err != nil {
			fmt.Fprintf(errOut, "write %s: %v\n", name, err)
			return 1
		}
	}
	return status
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
