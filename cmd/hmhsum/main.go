// Copyright (c) 2024 Symbol Not Found LLC
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// github.com:SymbolNotFound/hyperminhash/cmd/hmhsum/main.go

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/SymbolNotFound/hyperminhash"
	"github.com/SymbolNotFound/hyperminhash/stream"
)

func main() {
	filename := flag.String("file", "", "path to a file whose item digest should be printed")
	empty := flag.Bool("empty", false, "prints the empty-stream digest")

	flag.Parse()

	e := hyperminhash.NewEntry()
	switch {
	case *empty:
		// e already is the empty entry; nothing to add.
	case *filename != "":
		f, err := os.Open(*filename)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := stream.AddReader(e, f, 0); err != nil {
			log.Fatal(err)
		}
	default:
		args := flag.Args()
		if len(args) == 0 {
			fmt.Println("Expected a --file flag, a --empty flag, or a string argument.")
			fmt.Println()
			flag.Usage()
			return
		}
		e.AddBytes([]byte(args[0]))
	}

	fmt.Println(e.String())
}
