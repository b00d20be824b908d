package recording

import (
	"bufio"
	"fmt"
	"os"

	"github.com/gogpu/koch"
)

// Export plays rec back into a fresh instance of the named backend and
// writes the result to path.
//
// Backends implementing FileBackend save themselves; otherwise the output
// of a WriterBackend is streamed into a newly created file.
func Export(rec *Recording, name, path string) error {
	backend, err := NewBackend(name)
	if err != nil {
		return err
	}
	if err := rec.Playback(backend); err != nil {
		return fmt.Errorf("recording: %s playback: %w", name, err)
	}

	switch b := backend.(type) {
	case FileBackend:
		if err := b.SaveToFile(path); err != nil {
			return fmt.Errorf("recording: save %s: %w", path, err)
		}
	case WriterBackend:
		if err := writeFile(b, path); err != nil {
			return fmt.Errorf("recording: save %s: %w", path, err)
		}
	default:
		return fmt.Errorf("recording: backend %q has no file output", name)
	}

	koch.Logger().Info("recording: exported",
		"backend", name, "path", path, "shapes", rec.Shapes(), "lines", rec.Lines())
	return nil
}

func writeFile(b WriterBackend, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := b.WriteTo(w); err != nil {
		return err
	}
	return w.Flush()
}
