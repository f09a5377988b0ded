// Package watch следит за файлом конфигурации и сообщает о внешних правках.
package watch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 200 * time.Millisecond

// Watcher наблюдает за одним файлом через fsnotify.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onChange func()
	stop     chan struct{}
}

// New создаёт Watcher для файла path. onChange вызывается после каждой
// записи в файл, с задержкой debounceDelay против серий событий.
func New(path string, onChange func()) *Watcher {
	return &Watcher{
		path:     path,
		onChange: onChange,
		stop:     make(chan struct{}),
	}
}

// Start запускает наблюдение. Следим за каталогом, а не за самим файлом:
// редакторы часто пересоздают файл, и watch на inode теряется.
func (w *Watcher) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("создание watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("наблюдение за каталогом: %w", err)
	}
	w.watcher = watcher

	go w.loop()
	return nil
}

func (w *Watcher) loop() {
	var debounce *time.Timer

	for {
		select {
		case <-w.stop:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, w.onChange)

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// Stop останавливает наблюдение.
func (w *Watcher) Stop() error {
	close(w.stop)
	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}
