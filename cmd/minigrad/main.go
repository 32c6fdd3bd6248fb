// Package main provides the minigrad CLI.
package main

import (
	"fmt"
	"os"

	"github.com/shahabhishek1729/minigrad/autodiff"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("minigrad %s\n", version)
		return
	}

	if err := runDemo(); err != nil {
		fmt.Fprintln(os.Stderr, "minigrad:", err)
		os.Exit(1)
	}
}

// runDemo builds the reference compound expression and prints every node's
// value and gradient after a backward pass.
func runDemo() error {
	a := autodiff.New(-4.0, "a")
	b := autodiff.New(2.0, "b")

	c := a.Add(b)
	c.SetLabel("c")
	d := a.Mul(b)
	d.SetLabel("d")

	e, err := d.Div(c)
	if err != nil {
		return err
	}
	e.SetLabel("e")

	f := autodiff.New(10.0, "f")
	g, err := f.Div(e)
	if err != nil {
		return err
	}
	g.SetLabel("g")

	g.Backward()

	fmt.Println("g = (f / (a*b / (a+b)))  with  a=-4, b=2, f=10")
	fmt.Println()
	for _, n := range []*autodiff.Scalar{a, b, c, d, e, f, g} {
		fmt.Printf("  %s: value = %8.4f   grad = %8.4f\n", n.Label(), n.Value(), n.Grad())
	}
	return nil
}
