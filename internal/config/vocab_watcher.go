package config

import (
	"path/filepath"
	"sync/atomic"
	"time"

	"resumelens/internal/errors"

	"github.com/fsnotify/fsnotify"
)

// VocabularyProvider hands out the vocabulary snapshot an analysis run
// should use. Implementations must return a snapshot that will never be
// mutated after it is returned.
type VocabularyProvider interface {
	Current() *Vocabulary
}

// StaticVocabulary is a provider that always returns the same snapshot.
// It is what the CLI uses, where one process serves one analysis.
type StaticVocabulary struct {
	vocab *Vocabulary
}

// NewStaticVocabulary wraps a snapshot in a provider
func NewStaticVocabulary(vocab *Vocabulary) *StaticVocabulary {
	return &StaticVocabulary{vocab: vocab}
}

// Current returns the wrapped snapshot
func (s *StaticVocabulary) Current() *Vocabulary {
	return s.vocab
}

// VocabularyWatcher watches the configured vocabulary files and swaps in a
// freshly loaded snapshot when they change. In-flight analyses keep the
// snapshot they started with.
type VocabularyWatcher struct {
	files   VocabularyFilesConfig
	current atomic.Pointer[Vocabulary]
	watcher *fsnotify.Watcher
	logger  *errors.Logger
	done    chan struct{}
	hook    atomic.Pointer[func(success bool)]
}

// reloadDebounce coalesces the event bursts editors produce on save
const reloadDebounce = 500 * time.Millisecond

// NewVocabularyWatcher loads the initial snapshot and starts watching the
// directories containing the configured override files. Close must be called
// to release the watcher.
func NewVocabularyWatcher(files VocabularyFilesConfig, logger *errors.Logger) (*VocabularyWatcher, error) {
	vocab, err := LoadVocabulary(files)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &VocabularyWatcher{
		files:   files,
		watcher: watcher,
		logger:  logger,
		done:    make(chan struct{}),
	}
	w.current.Store(vocab)

	// Watch parent directories rather than the files themselves so that
	// rename-based atomic writes are still observed.
	watched := make(map[string]bool)
	for _, path := range []string{files.SkillsFile, files.ActionVerbsFile, files.WeakOpenersFile, files.SectionSynonymsFile} {
		if path == "" {
			continue
		}
		dir := filepath.Dir(path)
		if watched[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, err
		}
		watched[dir] = true
	}

	go w.run()
	return w, nil
}

// Current returns the most recently loaded snapshot
func (w *VocabularyWatcher) Current() *Vocabulary {
	return w.current.Load()
}

// SetReloadHook registers a callback invoked after every reload attempt with
// whether the new snapshot was applied. The server uses it to feed reload
// metrics. Safe to call while the watcher is running.
func (w *VocabularyWatcher) SetReloadHook(hook func(success bool)) {
	w.hook.Store(&hook)
}

// Close stops the watcher goroutine and releases the file watcher
func (w *VocabularyWatcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *VocabularyWatcher) run() {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
				timerC = timer.C
			} else {
				timer.Reset(reloadDebounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("vocabulary watcher error", "error", err)
		}
	}
}

func (w *VocabularyWatcher) relevant(name string) bool {
	for _, path := range []string{w.files.SkillsFile, w.files.ActionVerbsFile, w.files.WeakOpenersFile, w.files.SectionSynonymsFile} {
		if path != "" && filepath.Clean(name) == filepath.Clean(path) {
			return true
		}
	}
	return false
}

// reload loads a new snapshot and swaps it in. A failed load keeps the
// previous snapshot so a half-written file cannot break serving.
func (w *VocabularyWatcher) reload() {
	vocab, err := LoadVocabulary(w.files)
	if err != nil {
		w.logger.LogError(err, "vocabulary reload failed, keeping previous snapshot")
		w.notifyReload(false)
		return
	}
	w.current.Store(vocab)
	w.logger.Info("vocabulary reloaded",
		"skills", len(vocab.Skills),
		"action_verbs", len(vocab.ActionVerbs),
		"weak_openers", len(vocab.WeakOpeners))
	w.notifyReload(true)
}

func (w *VocabularyWatcher) notifyReload(success bool) {
	if hook := w.hook.Load(); hook != nil {
		(*hook)(success)
	}
}
