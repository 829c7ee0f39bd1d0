package store

import (
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher logs changes made to the data directory from outside the API,
// e.g. JSON files edited by hand while the dev server is running. It is
// purely informational; records are re-read from disk on every request, so
// there is nothing to invalidate.
type Watcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewWatcher starts watching the store's data directory and its record
// subdirectories.
func NewWatcher(s *Store) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dirs := []string{
		s.DataDir(),
		filepath.Join(s.DataDir(), articlesDirName),
		filepath.Join(s.DataDir(), booksDirName),
	}
	dirs = append(dirs, collectionDirs(s)...)
	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, err
		}
	}

	w := &Watcher{watcher: fw, done: make(chan struct{})}
	go w.run()
	return w, nil
}

func collectionDirs(s *Store) []string {
	root := filepath.Join(s.DataDir(), booksDirName)
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(root, entry.Name()))
		}
	}
	return dirs
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				log.Printf("store: data file changed on disk: %s (%s)", event.Name, event.Op)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("store: watcher error: %v", err)
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
