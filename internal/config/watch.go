package config

import (
	"github.com/knadh/koanf/providers/file"
)

// Watch reloads path whenever it changes. started, when non-nil, runs as
// soon as a change is seen; done receives the reloaded configuration or
// the error. Both run on the watcher's goroutine. The returned func stops
// watching.
func Watch(path string, started func(), done func(*Config, error)) (stop func() error, err error) {
	path = expandPath(path)
	fp := file.Provider(path)
	err = fp.Watch(func(_ any, werr error) {
		if started != nil {
			started()
		}
		if werr != nil {
			done(nil, werr)
			return
		}
		done(LoadFile(path))
	})
	if err != nil {
		return nil, err
	}
	return fp.Unwatch, nil
}
