package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"github.com/tien-han/LetterInventory/anagram"
	"github.com/tien-han/LetterInventory/inventory"
)

const debugEnv = "LETTERINVENTORY_DEBUG"

var MainWindow fyne.Window

func setupLogging() {
	w := os.Stderr

	level := slog.LevelInfo
	if os.Getenv(debugEnv) != "" {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    !isatty.IsTerminal(w.Fd()),
		}),
	))
}

func inventoryText(inv *inventory.LetterInventory) string {
	return fmt.Sprintf("%s  (%d letters)", inv.String(), inv.Size())
}

// letterPool turns an inventory back into a phrase the input entry can hold.
func letterPool(inv *inventory.LetterInventory) string {
	return strings.Trim(inv.String(), "[]")
}

func showPopup(text string) {
	pu := widget.NewPopUp(widget.NewLabel(text), MainWindow.Canvas())
	wsize := MainWindow.Canvas().Size()
	pu.Move(fyne.NewPos(wsize.Width/2, wsize.Height/2))
	pu.Show()
	go func() {
		time.Sleep(time.Second)
		fyne.Do(pu.Hide)
	}()
}

func ShowInterestingWordsList(rs *ResultSet, n int, exclude func(string), window fyne.Window) {
	topN := rs.TopNWords(n)
	var closeDialog func()
	topList := widget.NewList(func() int {
		return len(topN)
	}, func() fyne.CanvasObject {
		return NewTapLabel("TopN")
	}, func(id widget.ListItemID, obj fyne.CanvasObject) {
		label, ok := obj.(*TapLabel)
		if !ok {
			return
		}
		label.SetText(fmt.Sprintf("%s %d", topN[id].Word, topN[id].Count))
		label.OnTapped = func(pe *fyne.PointEvent) {
			excludeMI := fyne.NewMenuItem("Exclude", func() {
				exclude(topN[id].Word)
				closeDialog()
			})
			widget.ShowPopUpMenuAtRelativePosition(fyne.NewMenu("Pop up", excludeMI), window.Canvas(), pe.Position, label)
		}
	})
	d := dialog.NewCustom("Interesting words", "dismiss", topList, window)
	d.Resize(fyne.NewSize(400, 400))
	closeDialog = d.Hide
	d.Show()
}

func main() {
	setupLogging()

	App := app.NewWithID("io.github.tien-han.letterinventory")
	InitConfig(App)
	MainWindow = App.NewWindow("Letter Inventory")

	mainDicts, addedDicts, err := anagram.ReadDictionaries()
	if err != nil {
		slog.Error("cannot load dictionaries", "err", err)
		os.Exit(1)
	}

	mainDictNames := make([]string, len(mainDicts))
	for i, d := range mainDicts {
		mainDictNames[i] = d.Name
	}
	for _, d := range addedDicts {
		d.Enabled = Config.AddedDictEnabled(d.Name, d.Enabled)
	}

	resultSet := NewResultSet(mainDicts, addedDicts, Config.MainDictIndex(len(mainDicts)))

	inventoryLabel := widget.NewLabel(inventoryText(inventory.New()))
	inventoryLabel.TextStyle = fyne.TextStyle{Monospace: true}
	inventoryLabel.Wrapping = fyne.TextWrapBreak

	grid := NewSlotGrid(Config.SlotColumns())
	grid.OnError = func(err error) {
		dialog.ShowError(err, MainWindow)
	}

	inputdata := binding.NewString()
	inputEntry := widget.NewEntryWithData(inputdata)
	inputEntry.SetPlaceHolder("Type a phrase")
	inputdata.AddListener(binding.NewDataListener(func() {
		input, _ := inputdata.Get()
		inv, err := inventory.FromPhrase(input)
		if err != nil {
			dialog.ShowError(err, MainWindow)
			return
		}
		grid.SetInventory(inv)
		inventoryLabel.SetText(inventoryText(inv))
		Config.SetLastInput(input)
		resultSet.FindAnagrams(input)
	}))
	grid.OnChanged = func(inv *inventory.LetterInventory) {
		inputdata.Set(letterPool(inv))
	}

	inputClearButton := widget.NewButtonWithIcon("", theme.ContentClearIcon(), func() {
		inputdata.Set("")
	})

	progressBar := widget.NewProgressBar()
	resultSet.SetProgressCallback(func(current, goal int) {
		fyne.Do(func() {
			if goal == 0 {
				progressBar.SetValue(1.0)
				return
			}
			progressBar.SetValue(float64(current) / float64(goal))
		})
	})

	mainSelect := widget.NewSelect(mainDictNames, nil)
	mainSelect.SetSelectedIndex(Config.MainDictIndex(len(mainDicts)))
	mainSelect.OnChanged = func(dictName string) {
		for i, n := range mainDictNames {
			if dictName == n {
				Config.SetMainDictIndex(i)
				resultSet.SetMainIndex(i)
				MainWindow.SetTitle(resultSet.CombinedDictName())
				return
			}
		}
		dialog.ShowError(errors.New("can't find selected main dictionary"), MainWindow)
	}

	addedChecks := make([]fyne.CanvasObject, len(addedDicts))
	for i, ad := range addedDicts {
		check := widget.NewCheck(ad.Name, nil)
		check.Checked = ad.Enabled
		check.OnChanged = func(checked bool) {
			Config.SetAddedDictEnabled(ad.Name, checked)
			resultSet.SetAddedEnabled(i, checked)
			MainWindow.SetTitle(resultSet.CombinedDictName())
		}
		addedChecks[i] = check
	}
	addedDictsContainer := container.New(layout.NewHBoxLayout(), addedChecks...)

	input := container.NewBorder(nil, nil, nil, inputClearButton, inputEntry)
	inputBar := container.New(layout.NewAdaptiveGridLayout(2), input, progressBar)
	dictionaryBar := container.New(layout.NewAdaptiveGridLayout(2), mainSelect, addedDictsContainer)
	controlBar := container.New(layout.NewVBoxLayout(), inputBar, inventoryLabel, grid.Container, dictionaryBar)

	exclusiondata := binding.NewString()
	excludeWord := func(word string) {
		existing, _ := exclusiondata.Get()
		if existing == "" {
			exclusiondata.Set(word)
		} else {
			exclusiondata.Set(existing + " " + word)
		}
	}

	resultsDisplay := widget.NewList(func() int {
		return resultSet.Count()
	}, func() fyne.CanvasObject {
		return NewTapLabel("Result")
	}, func(id widget.ListItemID, obj fyne.CanvasObject) {
		label, ok := obj.(*TapLabel)
		if !ok {
			return
		}
		text, _ := resultSet.GetAt(id)
		label.SetText(fmt.Sprintf("%6d %s", id+1, text))
		label.OnTapped = func(pe *fyne.PointEvent) {
			source := resultSet.Input()
			copyAnagramMI := fyne.NewMenuItem("Copy anagram to clipboard", func() {
				App.Clipboard().SetContent(text)
				showPopup("Copied to clipboard")
			})
			copyBothMI := fyne.NewMenuItem("Copy input and anagram to clipboard", func() {
				App.Clipboard().SetContent(fmt.Sprintf("%s->%s", source, text))
				showPopup("Copied to clipboard")
			})
			words := strings.Fields(text)
			excludeMIs := make([]*fyne.MenuItem, len(words))
			for index, word := range words {
				excludeMIs[index] = fyne.NewMenuItem(word, func() {
					excludeWord(word)
				})
			}
			excludeMI := fyne.NewMenuItem("Exclude", nil)
			excludeMI.ChildMenu = fyne.NewMenu("Exclude", excludeMIs...)
			pumenu := fyne.NewMenu("Pop up", copyAnagramMI, copyBothMI, excludeMI)
			widget.ShowPopUpMenuAtRelativePosition(pumenu, MainWindow.Canvas(), pe.Position, label)
		}
	})
	resultSet.SetRefreshCallback(func() {
		fyne.Do(func() {
			resultsDisplay.Refresh()
		})
	})

	inclusiondata := binding.NewString()
	inclusionentry := widget.NewEntryWithData(inclusiondata)
	inclusionentry.MultiLine = true
	inclusionentry.Validator = func(text string) error {
		source, err := inventory.FromPhrase(inputEntry.Text)
		if err != nil {
			return err
		}
		for index, phrase := range strings.Split(text, "\n") {
			phraseInv, err := inventory.FromPhrase(phrase)
			if err != nil {
				return err
			}
			if !phraseInv.SubsetOf(source) {
				return fmt.Errorf("line %d not a subset of the input", index+1)
			}
		}
		return nil
	}
	inclusiondata.AddListener(binding.NewDataListener(func() {
		included, _ := inclusiondata.Get()
		resultSet.SetInclusions(strings.Split(included, "\n"))
	}))
	inclusionclearbutton := widget.NewButtonWithIcon("", theme.ContentClearIcon(), func() {
		inclusiondata.Set("")
	})

	exclusiondata.AddListener(binding.NewDataListener(func() {
		exclusions, _ := exclusiondata.Get()
		resultSet.SetExclusions(strings.Fields(exclusions))
	}))
	exclusionentry := widget.NewEntryWithData(exclusiondata)
	exclusionclearbutton := widget.NewButtonWithIcon("", theme.ContentClearIcon(), func() {
		exclusiondata.Set("")
	})

	interestingbutton := widget.NewButton("Interesting words", func() {
		ShowInterestingWordsList(resultSet, 1000, excludeWord, MainWindow)
	})
	exclusionlabel := container.New(layout.NewHBoxLayout(), widget.NewLabel("Excluded words"), exclusionclearbutton)
	bottomcontainer := container.New(layout.NewVBoxLayout(), exclusionlabel, exclusionentry)
	inclusionlabel := container.New(layout.NewHBoxLayout(), widget.NewLabel("Include phrases"), inclusionclearbutton, layout.NewSpacer(), interestingbutton)
	controlscontainer := container.NewBorder(inclusionlabel, bottomcontainer, nil, nil, inclusionentry)
	mainDisplay := container.New(layout.NewAdaptiveGridLayout(2), resultsDisplay, controlscontainer)

	MainWindow.SetContent(container.NewBorder(controlBar, nil, nil, nil, mainDisplay))
	MainWindow.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu("Edit",
		fyne.NewMenuItem("Preferences", func() {
			Config.ShowPreferencesDialog(MainWindow, func() {
				grid.SetColumns(Config.SlotColumns())
			})
		}),
	)))
	MainWindow.SetTitle(resultSet.CombinedDictName())

	inputdata.Set(Config.LastInput())

	MainWindow.Resize(fyne.NewSize(900, 650))
	MainWindow.ShowAndRun()
}
