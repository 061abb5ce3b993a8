// Command bststats inserts the keys given as arguments into a binary search
// tree and prints its statistics.
package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/arborhw/arbor/bst"
	"github.com/pkg/errors"
)

func mainInner() error {
	verbosePtr := flag.Bool("v", false, "also print every sum strategy and the tree height")
	flag.Parse()

	tr := bst.New[float64]()
	for _, arg := range flag.Args() {
		k, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return errors.Wrapf(err, "bad key %q", arg)
		}
		tr.Insert(k)
	}

	st := tr.Statistics()
	fmt.Printf("in-order: %v\n", tr.InOrder())
	fmt.Printf("count:    %d\n", st.Count)
	fmt.Printf("sum:      %v\n", st.Sum)
	fmt.Printf("average:  %v\n", st.Average)
	if st.Min != nil {
		fmt.Printf("min:      %v\n", *st.Min)
		fmt.Printf("max:      %v\n", *st.Max)
	} else {
		fmt.Println("min:      -")
		fmt.Println("max:      -")
	}

	if *verbosePtr {
		fmt.Printf("height:   %d\n", tr.Height())
		fmt.Printf("sum (pre-order stack): %v\n", tr.SumIterative())
		fmt.Printf("sum (post-order):      %v\n", tr.SumPostOrder())
		fmt.Printf("sum (level-order):     %v\n", tr.SumLevelOrder())
	}
	return nil
}

func main() {
	err := mainInner()
	if err != nil {
		panic(err.Error())
	}
}
