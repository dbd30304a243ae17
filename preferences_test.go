package main

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestConfigInput(t *testing.T) {
	c := NewConfig(test.NewTempApp(t).Preferences())

	if c.LastInput() != "" {
		t.Error("Fresh config should have no last input")
	}

	c.SetLastInput("Washington State")
	if c.LastInput() != "Washington State" {
		t.Error("Didn't remember input")
	}

	c.SetRememberInput(false)
	if c.LastInput() != "" {
		t.Error("Input leaked while not remembering")
	}
	c.SetLastInput("forgotten")

	c.SetRememberInput(true)
	if c.LastInput() != "" {
		t.Error("Input saved while not remembering")
	}
}

func TestConfigDictionaries(t *testing.T) {
	c := NewConfig(test.NewTempApp(t).Preferences())

	if c.MainDictIndex(2) != 0 {
		t.Error("Default main dictionary should be 0")
	}

	c.SetMainDictIndex(1)
	if c.MainDictIndex(2) != 1 {
		t.Error("Didn't remember main dictionary")
	}
	if c.MainDictIndex(1) != 0 {
		t.Error("Out of range main dictionary not reset")
	}

	if !c.AddedDictEnabled("Places", true) || c.AddedDictEnabled("Names", false) {
		t.Error("Added dictionary fallback not honored")
	}

	c.SetAddedDictEnabled("Places", false)
	if c.AddedDictEnabled("Places", true) {
		t.Error("Didn't remember added dictionary flag")
	}
}

func TestConfigSlotColumns(t *testing.T) {
	c := NewConfig(test.NewTempApp(t).Preferences())

	if c.SlotColumns() != defaultSlotColumns {
		t.Errorf("Unexpected default columns %d", c.SlotColumns())
	}

	c.SetSlotColumns(26)
	if c.SlotColumns() != 26 {
		t.Error("Didn't remember columns")
	}

	c.SetSlotColumns(7)
	if c.SlotColumns() != defaultSlotColumns {
		t.Error("Unsupported column count not reset")
	}
}
