package main

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const (
	lastInputKey       = "io.github.tien-han.letterinventory.last_input"
	rememberInputKey   = "io.github.tien-han.letterinventory.remember_input"
	mainDictKey        = "io.github.tien-han.letterinventory.main_dict"
	addedDictKeyStem   = "io.github.tien-han.letterinventory.added_dict."
	slotColumnsKey     = "io.github.tien-han.letterinventory.slot_columns"
	defaultSlotColumns = 13
)

var slotColumnChoices = []int{6, 9, 13, 26}

type ConfigT struct {
	prefs fyne.Preferences
}

var Config ConfigT

func InitConfig(app fyne.App) {
	Config = NewConfig(app.Preferences())
}

func NewConfig(prefs fyne.Preferences) ConfigT {
	return ConfigT{prefs: prefs}
}

func (c ConfigT) RememberInput() bool {
	return c.prefs.BoolWithFallback(rememberInputKey, true)
}

func (c ConfigT) SetRememberInput(remember bool) {
	c.prefs.SetBool(rememberInputKey, remember)
	if !remember {
		c.prefs.RemoveValue(lastInputKey)
	}
}

// LastInput is empty unless remembering input is switched on.
func (c ConfigT) LastInput() string {
	if !c.RememberInput() {
		return ""
	}
	return c.prefs.String(lastInputKey)
}

func (c ConfigT) SetLastInput(input string) {
	if c.RememberInput() {
		c.prefs.SetString(lastInputKey, input)
	}
}

// MainDictIndex returns the saved main dictionary, or 0 if the saved index
// no longer fits the count dictionaries available.
func (c ConfigT) MainDictIndex(count int) int {
	i := c.prefs.IntWithFallback(mainDictKey, 0)
	if i < 0 || i >= count {
		return 0
	}
	return i
}

func (c ConfigT) SetMainDictIndex(index int) {
	c.prefs.SetInt(mainDictKey, index)
}

func (c ConfigT) AddedDictEnabled(name string, fallback bool) bool {
	return c.prefs.BoolWithFallback(addedDictKeyStem+name, fallback)
}

func (c ConfigT) SetAddedDictEnabled(name string, enabled bool) {
	c.prefs.SetBool(addedDictKeyStem+name, enabled)
}

func (c ConfigT) SlotColumns() int {
	cols := c.prefs.IntWithFallback(slotColumnsKey, defaultSlotColumns)
	for _, choice := range slotColumnChoices {
		if cols == choice {
			return cols
		}
	}
	return defaultSlotColumns
}

func (c ConfigT) SetSlotColumns(cols int) {
	c.prefs.SetInt(slotColumnsKey, cols)
}

func (c ConfigT) ShowPreferencesDialog(window fyne.Window, onSave func()) {
	rememberCheck := widget.NewCheck("", nil)
	rememberCheck.SetChecked(c.RememberInput())

	columnLabels := make([]string, len(slotColumnChoices))
	for i, choice := range slotColumnChoices {
		columnLabels[i] = strconv.Itoa(choice)
	}
	columnSelector := widget.NewSelect(columnLabels, nil)
	columnSelector.SetSelected(strconv.Itoa(c.SlotColumns()))

	entries := []*widget.FormItem{
		widget.NewFormItem("Remember last input", rememberCheck),
		widget.NewFormItem("Letters per row", columnSelector),
	}

	dialog.ShowForm("Preferences", "Save", "Cancel", entries, func(save bool) {
		if !save {
			return
		}
		c.SetRememberInput(rememberCheck.Checked)
		if cols, err := strconv.Atoi(columnSelector.Selected); err == nil {
			c.SetSlotColumns(cols)
		}
		if onSave != nil {
			onSave()
		}
	}, window)
}
