package app

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gridsnake/internal/domain"
	"gridsnake/internal/store"
)

// Options are the command-line settings shared by every front-end.
type Options struct {
	Game    *domain.GameConfig
	DataDir string
	Memory  bool
	Seed    int64
}

func RegisterFlags(fs *flag.FlagSet) *Options {
	defaults := domain.DefaultGameConfig()
	opts := &Options{Game: defaults.Copy()}

	fs.Func("tiles", "grid size in cells per side", intFlag(&opts.Game.TileCount))
	fs.Func("cell", "cell size in pixels", intFlag(&opts.Game.CellSize))
	fs.Func("tick", "milliseconds per tick", intFlag(&opts.Game.TickDelayMs))
	fs.StringVar(&opts.DataDir, "data", defaultDataDir(), "directory for the high score")
	fs.BoolVar(&opts.Memory, "memory", false, "keep the high score in memory only")
	fs.Int64Var(&opts.Seed, "seed", 0, "random seed for food placement (0 = time based)")

	return opts
}

// OpenStore returns the configured store. A directory that cannot be used
// falls back to memory so the game still runs.
func (o *Options) OpenStore() store.Store {
	if o.Memory || o.DataDir == "" {
		return store.NewMemoryStore()
	}

	s, err := store.NewFileStore(o.DataDir)
	if err != nil {
		log.Printf("High score will not be saved: %v", err)
		return store.NewMemoryStore()
	}
	log.Printf("High score stored in %s", s.Dir())
	return s
}

func (o *Options) Rand() domain.Rand {
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gridsnake")
}

func intFlag(dst *int32) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return err
		}
		*dst = int32(v)
		return nil
	}
}
