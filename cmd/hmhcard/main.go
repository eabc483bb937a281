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
// github.com:SymbolNotFound/hyperminhash/cmd/hmhcard/main.go

// hmhcard walks one or more directory trees, builds one Sketch per tree
// from its files' contents, and reports the approximate number of
// distinct files in each tree plus the approximate overlap between every
// pair of trees given.
//
// Example usage:
//
//	hmhcard ./dirA ./dirB
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/SymbolNotFound/hyperminhash"
	"github.com/SymbolNotFound/hyperminhash/stream"
)

type treeSketch struct {
	path      string
	sketch    *hyperminhash.Sketch
	fileCount int
}

func main() {
	flag.Parse()
	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Println("Expected one or more directory paths.")
		fmt.Println()
		flag.Usage()
		return
	}

	trees := make([]treeSketch, 0, len(paths))
	for _, path := range paths {
		trees = append(trees, countUniqueFiles(path))
	}

	if len(trees) > 1 {
		fmt.Println("---")
		for i := 0; i < len(trees); i++ {
			for j := i + 1; j < len(trees); j++ {
				a, b := trees[i], trees[j]
				shared := a.sketch.Intersection(b.sketch)
				similarity := a.sketch.Similarity(b.sketch)
				fmt.Printf("`%s`, `%s`: approx. %d files are the same (%.1f%%)\n",
					a.path, b.path, int(shared), similarity*100)
			}
		}
	}
}

// countUniqueFiles hashes the contents of every regular file under path
// into one Sketch and prints a summary line in the same shape the
// original Python tool used.
func countUniqueFiles(path string) treeSketch {
	sk := hyperminhash.New()
	fileCount := 0

	err := filepath.WalkDir(path, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		f, err := os.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()

		e := hyperminhash.NewEntry()
		if err := stream.AddReader(e, f, 0); err != nil {
			return err
		}
		sk.AddEntry(e)
		fileCount++
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("`%s`: %d files, %d unique files\n", path, fileCount, sk.Len())
	return treeSketch{path: path, sketch: sk, fileCount: fileCount}
}
