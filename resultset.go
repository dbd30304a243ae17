package main

import (
	"context"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tien-han/LetterInventory/anagram"
)

const (
	maxCachedResultSetStates = 25
	initialFetch             = 25
)

type RSState struct {
	input            string
	normalizedInput  string
	included         []string
	excluded         []string
	wordCount        map[string]int
	results          []string
	isDone           bool
	combinedDict     *anagram.Dictionary
	combinedDictName string
	resultChan       <-chan string
	cancel           context.CancelFunc
	lastUsed         time.Time
}

func NewRSState() *RSState {
	return &RSState{
		included:  make([]string, 0),
		excluded:  make([]string, 0),
		wordCount: make(map[string]int),
		results:   make([]string, 0, initialFetch),
		lastUsed:  time.Now(),
	}
}

// stop cancels the running search. A stopped state that is not done gets
// regenerated when it becomes current again.
func (s *RSState) stop() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.resultChan = nil
}

// ResultSet pages anagram results in from a background search and caches
// recent searches so flipping between inputs is cheap.
type ResultSet struct {
	mainDicts     []*anagram.Dictionary
	addedDicts    []*anagram.Dictionary
	mainDictIndex int

	mu          sync.Mutex // guards everything below
	state       *RSState
	cached      []*RSState
	fetchTarget int

	fetchLock        sync.Mutex
	progressCallback func(int, int)
	refreshCallback  func()
}

func NewResultSet(mainDicts, addedDicts []*anagram.Dictionary, mainDictIndex int) *ResultSet {
	rs := &ResultSet{
		mainDicts:     mainDicts,
		addedDicts:    addedDicts,
		mainDictIndex: mainDictIndex,
		state:         NewRSState(),
	}

	rs.RebuildDictionaries()
	return rs
}

func (rs *ResultSet) SetProgressCallback(cb func(int, int)) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.progressCallback = cb
}

func (rs *ResultSet) SetRefreshCallback(cb func()) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.refreshCallback = cb
}

func (rs *ResultSet) FindAnagrams(input string) {
	rs.mu.Lock()
	name := rs.state.combinedDictName
	rs.mu.Unlock()
	rs.setState(input, []string{}, []string{}, name)
}

func (rs *ResultSet) SetInclusions(phrases []string) {
	rs.mu.Lock()
	s := rs.state
	rs.mu.Unlock()
	rs.setState(s.input, cleanList(phrases), s.excluded, s.combinedDictName)
}

func (rs *ResultSet) SetExclusions(words []string) {
	rs.mu.Lock()
	s := rs.state
	rs.mu.Unlock()
	rs.setState(s.input, s.included, cleanList(words), s.combinedDictName)
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func (rs *ResultSet) setState(input string, included, excluded []string, combDictName string) {
	rs.mu.Lock()

	old := rs.state
	for _, cachedState := range rs.cached {
		if cachedState.input == input && cachedState.combinedDictName == combDictName &&
			slices.Equal(cachedState.included, included) && slices.Equal(cachedState.excluded, excluded) {
			slog.Debug("using cached result state", "input", cachedState.input)
			cachedState.lastUsed = time.Now()
			if old != cachedState {
				old.stop()
			}
			rs.state = cachedState
			needsRegen := !cachedState.isDone && cachedState.resultChan == nil
			refresh := rs.refreshCallback
			rs.mu.Unlock()

			if needsRegen {
				rs.Regenerate()
			} else if refresh != nil {
				refresh()
			}
			return
		}
	}

	slog.Debug("building new result state", "input", input, "dicts", combDictName)

	old.stop()

	state := NewRSState()
	state.input = input
	state.normalizedInput = anagram.Normalize(input)
	state.included = included
	state.excluded = excluded
	state.combinedDictName = combDictName
	state.combinedDict = rs.combineDicts(excluded)

	rs.cached = append(rs.cached, state)
	rs.trimCache()

	rs.state = state
	rs.mu.Unlock()

	rs.Regenerate()
}

// trimCache drops the least recently used states. Callers hold rs.mu.
func (rs *ResultSet) trimCache() {
	sort.Slice(rs.cached, func(i, j int) bool {
		return rs.cached[j].lastUsed.Before(rs.cached[i].lastUsed)
	})

	if len(rs.cached) > maxCachedResultSetStates {
		slog.Debug("trimming result state cache", "size", len(rs.cached))
		for _, s := range rs.cached[maxCachedResultSetStates:] {
			if s != rs.state {
				s.stop()
			}
		}
		rs.cached = rs.cached[:maxCachedResultSetStates]
	}
}

func (rs *ResultSet) RebuildDictionaries() {
	rs.mu.Lock()
	s := rs.state
	name := rs.makeCombinedDictName()
	rs.mu.Unlock()
	rs.setState(s.input, s.included, s.excluded, name)
}

func (rs *ResultSet) makeCombinedDictName() string {
	names := make([]string, 0, len(rs.addedDicts)+1)

	names = append(names, rs.mainDicts[rs.mainDictIndex].Name)
	for _, ad := range rs.addedDicts {
		if ad.Enabled {
			names = append(names, ad.Name)
		}
	}

	return strings.Join(names, " + ")
}

func (rs *ResultSet) combineDicts(excluded []string) *anagram.Dictionary {
	dicts := make([]*anagram.Dictionary, 0, len(rs.addedDicts)+1)
	dicts = append(dicts, rs.mainDicts[rs.mainDictIndex])
	for _, d := range rs.addedDicts {
		if d.Enabled {
			dicts = append(dicts, d)
		}
	}

	return anagram.MergeDictionaries(excluded, dicts...)
}

// Regenerate restarts the search for the current state and fetches the
// first page in the background.
func (rs *ResultSet) Regenerate() {
	rs.mu.Lock()
	s := rs.state
	s.stop()
	s.wordCount = make(map[string]int)
	s.results = make([]string, 0, initialFetch)
	s.isDone = false
	rs.fetchTarget = 0

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.resultChan = anagram.FindAnagrams(ctx, s.input, s.included, s.combinedDict)
	rs.mu.Unlock()

	go func() {
		rs.FetchTo(initialFetch)
		rs.mu.Lock()
		refresh := rs.refreshCallback
		rs.mu.Unlock()
		if refresh != nil {
			refresh()
		}
	}()
}

func (rs *ResultSet) CombinedDictName() string {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.state.combinedDictName
}

func (rs *ResultSet) Input() string {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.state.input
}

func (rs *ResultSet) SetMainIndex(index int) {
	rs.mu.Lock()
	rs.mainDictIndex = index
	rs.mu.Unlock()
	rs.RebuildDictionaries()
}

func (rs *ResultSet) SetAddedEnabled(index int, enabled bool) {
	rs.mu.Lock()
	rs.addedDicts[index].Enabled = enabled
	rs.mu.Unlock()
	rs.RebuildDictionaries()
}

// FetchTo blocks until the current state holds at least target results or
// its search is exhausted.
func (rs *ResultSet) FetchTo(target int) {
	rs.fetchLock.Lock()
	defer rs.fetchLock.Unlock()

	rs.mu.Lock()
	state := rs.state
	if rs.fetchTarget < target {
		rs.fetchTarget = target
	}
	rs.mu.Unlock()

	rs.progress()
	defer rs.progress()

	for {
		rs.mu.Lock()
		if rs.state != state || state.isDone || len(state.results) >= rs.fetchTarget || state.resultChan == nil {
			rs.mu.Unlock()
			return
		}
		ch := state.resultChan
		rs.mu.Unlock()

		next, ok := <-ch

		rs.mu.Lock()
		if state.resultChan != ch {
			rs.mu.Unlock()
			continue // regenerated or stopped while we waited
		}
		if !ok {
			state.isDone = true
			rs.fetchTarget = len(state.results)
			slog.Debug("anagram search complete", "input", state.input, "results", len(state.results))
		} else if anagram.Normalize(next) != state.normalizedInput {
			for _, word := range strings.Fields(next) {
				state.wordCount[word] += 1
			}
			state.results = append(state.results, next)
		}
		count := len(state.results)
		rs.mu.Unlock()

		if count%10 == 0 {
			rs.progress()
		}
	}
}

func (rs *ResultSet) progress() {
	rs.mu.Lock()
	cb := rs.progressCallback
	current, goal := len(rs.state.results), rs.fetchTarget
	rs.mu.Unlock()
	if cb != nil {
		cb(current, goal)
	}
}

func (rs *ResultSet) IsDone() bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.state.isDone
}

func (rs *ResultSet) Count() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return len(rs.state.results)
}

func (rs *ResultSet) IsEmpty() bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return len(rs.state.results) == 0 && rs.state.isDone
}

// GetAt returns result index, fetching more results when index is near the
// end of what has been collected so far.
func (rs *ResultSet) GetAt(index int) (string, bool) {
	if index > rs.Count()-10 {
		rs.FetchTo(index + 10)
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()
	if index >= 0 && index < len(rs.state.results) {
		return rs.state.results[index], true
	}
	return "", false
}

type WordCount struct {
	Word  string
	Count int
}

type Counts []WordCount

func (c Counts) Len() int {
	return len(c)
}

func (c Counts) Swap(i, j int) {
	c[i], c[j] = c[j], c[i]
}

func (c Counts) Less(i, j int) bool {
	li, lj := len(c[i].Word)*c[i].Count, len(c[j].Word)*c[j].Count
	if li == lj {
		return c[i].Word < c[j].Word
	}
	return lj < li
}

// TopNWords ranks the words seen so far by letters contributed.
func (rs *ResultSet) TopNWords(n int) Counts {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	words := make(Counts, 0, len(rs.state.wordCount))
	for w, c := range rs.state.wordCount {
		words = append(words, WordCount{w, c})
	}

	sort.Sort(words)

	if len(words) > n {
		return words[:n]
	}
	return words
}
