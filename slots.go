package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"github.com/tien-han/LetterInventory/inventory"
)

// SlotGrid shows the 26 slots of an inventory and lets the user edit them
// one letter at a time.
type SlotGrid struct {
	inv       *inventory.LetterInventory
	slots     [inventory.AlphabetSize]*TapLabel
	Container *fyne.Container

	OnChanged func(*inventory.LetterInventory)
	OnError   func(error)
}

func NewSlotGrid(columns int) *SlotGrid {
	g := &SlotGrid{inv: inventory.New()}

	objs := make([]fyne.CanvasObject, inventory.AlphabetSize)
	for i := range g.slots {
		g.slots[i] = NewSlotLabel(inventory.Letter(i), g.add, g.subtract)
		objs[i] = g.slots[i]
	}
	g.Container = container.NewGridWithColumns(columns, objs...)

	return g
}

func (g *SlotGrid) SetColumns(columns int) {
	g.Container.Layout = layout.NewGridLayoutWithColumns(columns)
	g.Container.Refresh()
}

// Inventory returns a copy, so callers cannot change the grid behind its back.
func (g *SlotGrid) Inventory() *inventory.LetterInventory {
	return g.inv.Clone()
}

func (g *SlotGrid) SetInventory(inv *inventory.LetterInventory) {
	g.inv = inv.Clone()
	g.refresh()
}

func (g *SlotGrid) add(c rune) {
	g.apply(g.inv.Add(c))
}

func (g *SlotGrid) subtract(c rune) {
	g.apply(g.inv.Subtract(c))
}

func (g *SlotGrid) apply(err error) {
	if err != nil {
		if g.OnError != nil {
			g.OnError(err)
		}
		return
	}
	g.refresh()
	if g.OnChanged != nil {
		g.OnChanged(g.Inventory())
	}
}

func (g *SlotGrid) refresh() {
	counts := g.inv.Counts()
	for i, slot := range g.slots {
		slot.SetText(slotText(inventory.Letter(i), counts[i]))
	}
}
