// internal/export/checkpoint.go
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Checkpointer zapisuje partiale: co `every` wierszy (i bezwarunkowo na
// końcu przez Flush) bufor leci do pliku <tag>_<licznik_narastająco>.xlsx
// i jest zerowany. To tylko ślad postępu / ratunek po crashu — na treść
// finalnego eksportu nie wpływa.
type Checkpointer struct {
	log     zerolog.Logger
	dir     string
	tag     string
	every   int
	buf     []Row
	written int
}

func NewCheckpointer(log zerolog.Logger, dir, tag string, every int) *Checkpointer {
	if every <= 0 {
		every = 1000
	}
	_ = os.MkdirAll(dir, 0o755)
	return &Checkpointer{log: log, dir: dir, tag: tag, every: every}
}

func (c *Checkpointer) Add(r Row) error {
	c.buf = append(c.buf, r)
	if len(c.buf) >= c.every {
		return c.flush()
	}
	return nil
}

// Flush zapisuje resztkę bufora (ostatni, niepełny partial).
func (c *Checkpointer) Flush() error {
	if len(c.buf) == 0 {
		return nil
	}
	return c.flush()
}

// Written zwraca łączną liczbę wierszy zrzuconych do partiali.
func (c *Checkpointer) Written() int { return c.written }

func (c *Checkpointer) flush() error {
	c.written += len(c.buf)
	path := filepath.Join(c.dir, fmt.Sprintf("%s_%d.xlsx", c.tag, c.written))
	if err := Write(path, c.buf); err != nil {
		return fmt.Errorf("partial %s: %w", path, err)
	}
	c.log.Info().Str("supplier", c.tag).Int("rows", len(c.buf)).Str("file", path).Msg("partial zapisany")
	c.buf = c.buf[:0]
	return nil
}
