package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// TuningWatcher reports writes to the level tuning file.
// Reloads are left to the receiver so they happen on the game goroutine.
type TuningWatcher struct {
	watcher *fsnotify.Watcher
	target  string
	quiet   time.Duration
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// tuningQuietPeriod is how long the file must stay untouched before a change is reported
const tuningQuietPeriod = 100 * time.Millisecond

// WatchLevelTuning starts watching the directory holding LevelTuningPath
func WatchLevelTuning() (*TuningWatcher, error) {
	return watchFile(LevelTuningPath, tuningQuietPeriod)
}

// watchFile reports path once a burst of writes to it has been quiet for the given period
func watchFile(path string, quiet time.Duration) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TuningWatcher{
		watcher: w,
		target:  filepath.Clean(path),
		quiet:   quiet,
		Events:  make(chan string, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

func (w *TuningWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Poll drains pending events without blocking and reports whether the file changed
func (w *TuningWatcher) Poll() (changed bool, err error) {
	for {
		select {
		case <-w.Events:
			changed = true
		case e := <-w.Errors:
			err = e
		default:
			return changed, err
		}
	}
}

func (w *TuningWatcher) run() {
	// Armed on every matching event; fires only after the writes settle
	settle := time.NewTimer(w.quiet)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.target {
				continue
			}
			settle.Reset(w.quiet)
		case <-settle.C:
			select {
			case w.Events <- w.target:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
