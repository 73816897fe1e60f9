package main

import (
	"bytes"
	"fmt"

	"github.com/dustin/go-humanize"
)

type stats struct {
	pages     int
	rewritten int
	bytes     uint64
	anchors   int
	credits   int
}

func (s stats) String() string {
	buf := &bytes.Buffer{}

	fmt.Fprintf(buf, "Pages: %s (%s read)\n", humanize.Comma(int64(s.pages)), humanize.Bytes(s.bytes))
	fmt.Fprintf(buf, "Rewritten: %s\n", humanize.Comma(int64(s.rewritten)))
	fmt.Fprintf(buf, "Anchors: %s\n", humanize.Comma(int64(s.anchors)))
	fmt.Fprintf(buf, "Credits: %s", humanize.Comma(int64(s.credits)))

	return buf.String()
}
