// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package bindstore

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"github.com/jetsetilly/presetselector/curated"
	"github.com/jetsetilly/presetselector/logger"
)

// Watcher notices when the bindings file has been changed by another process.
// The Watcher does not reload the file itself. The Triggered() function
// should be checked periodically on the thread that owns the bindings.
//
// The directory containing the file is watched rather than the file itself.
// This means that the watch survives the file being replaced by a rename.
type Watcher struct {
	name    string
	watcher *fsnotify.Watcher

	triggered atomic.Bool

	done chan bool
	wg   sync.WaitGroup
}

// NewWatcher is the preferred method of initialisation for the Watcher type.
// The directory of the file is created if it does not exist.
func NewWatcher(path string) (*Watcher, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, curated.Errorf("watcher: %v", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, curated.Errorf("watcher: %v", err)
	}

	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, curated.Errorf("watcher: %v", err)
	}

	w := &Watcher{
		name:    filepath.Base(path),
		watcher: fw,
		done:    make(chan bool),
	}

	w.wg.Add(1)
	go w.service()

	return w, nil
}

func (w *Watcher) service() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != w.name {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove) {
				w.triggered.Store(true)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Logf(logger.Allow, "bindings", "watcher: %v", err)
		}
	}
}

// Triggered returns true if the file has been touched since the last call to
// Triggered(). The file may have been touched by this process.
func (w *Watcher) Triggered() bool {
	return w.triggered.Swap(false)
}

// Close stops the watcher. It is safe to call Close() more than once.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	if err != nil {
		return curated.Errorf("watcher: %v", err)
	}
	return nil
}
