package anagram

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed json
var jsonFS embed.FS

type Dictionary struct {
	Name    string
	Words   []string
	Enabled bool
}

type MainDictionaryConfig struct {
	Description string
	File        string
}

type AddedDictionaryConfig struct {
	Description string
	File        string
	Enabled     bool
}

const (
	mainDictsFile  = "main-dicts.json"
	addedDictsFile = "added-dicts.json"
)

func NewDictionary(name string) *Dictionary {
	return &Dictionary{name, make([]string, 0, 50), true}
}

func ParseDictionary(name string, jsondata []byte) (*Dictionary, error) {
	d := &Dictionary{Name: name, Enabled: true}

	if err := json.Unmarshal(jsondata, &d.Words); err != nil {
		return nil, fmt.Errorf("parse dictionary %s: %w", name, err)
	}
	return d, nil
}

func readEmbedded(file string, v any) error {
	data, err := jsonFS.ReadFile("json/" + file)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", file, err)
	}
	return nil
}

func ReadConfigs() ([]MainDictionaryConfig, []AddedDictionaryConfig, error) {
	var mainDicts []MainDictionaryConfig
	if err := readEmbedded(mainDictsFile, &mainDicts); err != nil {
		return nil, nil, err
	}

	var addedDicts []AddedDictionaryConfig
	if err := readEmbedded(addedDictsFile, &addedDicts); err != nil {
		return mainDicts, nil, err
	}
	return mainDicts, addedDicts, nil
}

func loadDictionary(description, file string) (*Dictionary, error) {
	data, err := jsonFS.ReadFile("json/" + file)
	if err != nil {
		return nil, err
	}
	return ParseDictionary(description, data)
}

// ReadDictionaries loads every dictionary named by the embedded configs.
func ReadDictionaries() ([]*Dictionary, []*Dictionary, error) {
	mainDictConfigs, addedDictConfigs, err := ReadConfigs()
	if err != nil {
		return nil, nil, err
	}

	mainDicts := make([]*Dictionary, len(mainDictConfigs))
	for i, mdc := range mainDictConfigs {
		mainDicts[i], err = loadDictionary(mdc.Description, mdc.File)
		if err != nil {
			return nil, nil, err
		}
	}

	addedDicts := make([]*Dictionary, len(addedDictConfigs))
	for i, adc := range addedDictConfigs {
		addedDicts[i], err = loadDictionary(adc.Description, adc.File)
		if err != nil {
			return mainDicts, nil, err
		}
		addedDicts[i].Enabled = adc.Enabled
	}

	return mainDicts, addedDicts, nil
}

// MergeDictionaries combines dicts into one, dropping duplicates and any
// word listed in excluded. Words are compared case-insensitively.
func MergeDictionaries(excluded []string, dicts ...*Dictionary) *Dictionary {
	names := make([]string, 0, len(dicts))
	size := 0
	for _, d := range dicts {
		size += len(d.Words)
	}
	words := make([]string, 0, size)

	knownWords := make(map[string]bool)
	for _, word := range excluded {
		knownWords[strings.ToLower(word)] = true
	} // if they're already "known" they won't be added again

	for _, d := range dicts {
		names = append(names, d.Name)
		for _, word := range d.Words {
			key := strings.ToLower(word)
			if word != "" && !knownWords[key] {
				knownWords[key] = true
				words = append(words, word)
			}
		}
	}

	result := NewDictionary(strings.Join(names, " + "))
	result.Words = words

	return result
}
