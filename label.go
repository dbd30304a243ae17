package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

type TapLabel struct {
	widget.BaseWidget

	Label             *widget.Label
	OnTapped          func(*fyne.PointEvent)
	OnTappedSecondary func(*fyne.PointEvent)
}

func NewTapLabel(text string) *TapLabel {
	tl := &TapLabel{}
	tl.Label = widget.NewLabel(text)
	tl.ExtendBaseWidget(tl)
	return tl
}

func (tl *TapLabel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(tl.Label)
}

func (tl *TapLabel) Tapped(pe *fyne.PointEvent) {
	if tl.OnTapped != nil {
		tl.OnTapped(pe)
	}
}

func (tl *TapLabel) TappedSecondary(pe *fyne.PointEvent) {
	if tl.OnTappedSecondary != nil {
		tl.OnTappedSecondary(pe)
	}
}

func (tl *TapLabel) SetText(text string) {
	tl.Label.SetText(text)
}

func slotText(letter rune, count int) string {
	return fmt.Sprintf("%c %d", letter, count)
}

// NewSlotLabel shows one inventory slot. A tap adds the letter and a
// secondary tap subtracts it.
func NewSlotLabel(letter rune, add, subtract func(rune)) *TapLabel {
	tl := NewTapLabel(slotText(letter, 0))
	tl.Label.Alignment = fyne.TextAlignCenter
	tl.Label.TextStyle = fyne.TextStyle{Monospace: true}
	tl.OnTapped = func(*fyne.PointEvent) { add(letter) }
	tl.OnTappedSecondary = func(*fyne.PointEvent) { subtract(letter) }
	return tl
}
