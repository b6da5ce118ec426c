package ladder_test

import (
	"fmt"

	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/wordgraph"
)

// ExampleShortest finds the shortest ladder between two words of an
// 8-word dictionary. Every hop rewrites exactly one letter.
func ExampleShortest() {
	dict := wordgraph.NewDictionary(
		"four", "tire", "tree", "free", "flee", "fore", "tore", "trre",
	)
	g, err := wordgraph.New(dict)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := ladder.Shortest(g, "fore", "flee")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Found)
	fmt.Println(res.Path)
	// Output:
	// true
	// [fore tore trre tree free flee]
}

// ExampleShortest_maxDepth bounds the search radius: fore→tree needs
// three letter changes, so a budget of two exhausts the frontier early.
func ExampleShortest_maxDepth() {
	dict := wordgraph.NewDictionary(
		"four", "tire", "tree", "free", "flee", "fore", "tore", "trre",
	)
	g, _ := wordgraph.New(dict)

	res, err := ladder.Shortest(g, "fore", "tree", ladder.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Found, res.Visited)
	// Output:
	// false 4
}

// ExampleShortest_hooks traces the frontier as it grows, one entry per
// enqueued word, layered by letter-change depth.
func ExampleShortest_hooks() {
	dict := wordgraph.NewDictionary(
		"four", "tire", "tree", "free", "flee", "fore", "tore", "trre",
	)
	g, _ := wordgraph.New(dict)

	_, err := ladder.Shortest(g, "fore", "tree",
		ladder.WithOnEnqueue(func(word string, depth int) {
			fmt.Printf("E[%s@%d] ", word, depth)
		}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	// Output:
	// E[fore@0] E[tore@1] E[tire@2] E[trre@2] E[tree@3]
}
