// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"log"

	"github.com/jroimartin/gocui"

	"github.com/ezrec/nibalu/alu"
	"github.com/ezrec/nibalu/nibble"
)

// panel is the ALU front panel: two operand switches and a lamp row per
// opcode.
type panel struct {
	a nibble.Nibble
	b nibble.Nibble
}

func main() {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	defer g.Close()

	p := &panel{}
	g.SetManagerFunc(p.layout)

	bindings := []struct {
		key     any
		handler func(*gocui.Gui, *gocui.View) error
	}{
		{gocui.KeyCtrlC, quit},
		{'q', quit},
		{gocui.KeyArrowRight, p.step(&p.a, 1)},
		{gocui.KeyArrowLeft, p.step(&p.a, -1)},
		{gocui.KeyArrowUp, p.step(&p.b, 1)},
		{gocui.KeyArrowDown, p.step(&p.b, -1)},
	}
	for _, binding := range bindings {
		if err := g.SetKeybinding("", binding.key, gocui.ModNone, binding.handler); err != nil {
			log.Panicln(err)
		}
	}

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
}

// step returns a handler that moves an operand, wrapping at the nibble
// boundary.
func (p *panel) step(operand *nibble.Nibble, delta int) func(*gocui.Gui, *gocui.View) error {
	return func(g *gocui.Gui, v *gocui.View) error {
		*operand = nibble.FromSigned(operand.Unsigned() + delta)
		return nil
	}
}

func (p *panel) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	operands, err := g.SetView("operands", 0, 0, maxX-1, 3)
	if err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		operands.Title = "Operands (left/right: A, up/down: B, q: quit)"
	}

	results, err := g.SetView("results", 0, 4, maxX-1, maxY-1)
	if err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		results.Title = "Results"
	}

	operands.Clear()
	fmt.Fprintf(operands, " A %v  %+3d  %2d\n", p.a, p.a.Signed(), p.a.Unsigned())
	fmt.Fprintf(operands, " B %v  %+3d  %2d\n", p.b, p.b.Signed(), p.b.Unsigned())

	results.Clear()
	fmt.Fprintf(results, " %-5s %-5s %-6s %-6s %s\n", "op", "code", "output", "signed", "flags")
	for op := range alu.SubsetAll.All() {
		res := alu.MustEvaluate(p.a, p.b, op)
		flags := ""
		if res.HasFlags {
			flags = res.Flags.String()
		}
		fmt.Fprintf(results, " %-5v %-5v %-6v %+6d %s\n", op, op.Nibble(), res.Output, res.Output.Signed(), flags)
	}

	return nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}
