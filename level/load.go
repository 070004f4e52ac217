package level

import (
	"github.com/plus3/platformer/world"
	"go.uber.org/zap"
)

// Result summarises an Apply call.
type Result struct {
	Spawned int
	Skipped int
}

// Apply creates the entities described by directives in w and commits them.
// Unparsed, unknown and unspawnable directives are logged and skipped so that
// one bad line does not abort the level. A level without a player line gets
// the default player.
func Apply(w *world.World, directives []Directive) Result {
	var res Result
	log := w.Log
	hasPlayer := false

	for _, d := range directives {
		if d.Err != nil {
			log.Warn("skipping level directive", zap.Int("line", d.Line), zap.Error(d.Err))
			res.Skipped++
			continue
		}

		var err error
		switch d.Kind {
		case KindTile:
			_, err = w.SpawnTile(d.Name, d.GridX, d.GridY)
		case KindDecoration:
			_, err = w.SpawnDecoration(d.Name, d.GridX, d.GridY)
		case KindPlayerSpawn:
			w.Player = d.Player
			_, err = w.SpawnPlayer()
			hasPlayer = true
		default:
			err = ErrUnknownDirective
		}

		if err != nil {
			log.Warn("level directive dropped",
				zap.Int("line", d.Line),
				zap.Stringer("directive", d),
				zap.Error(err))
			res.Skipped++
			continue
		}
		res.Spawned++
	}

	if !hasPlayer {
		log.Warn("level has no player line, using defaults")
		if _, err := w.SpawnPlayer(); err != nil {
			log.Error("player spawn failed", zap.Error(err))
		}
	}

	w.Manager.Update()
	return res
}

// LoadInto resets w and fills it from the level file at path.
func LoadInto(w *world.World, path string) (Result, error) {
	directives, err := LoadFile(path)
	if err != nil {
		return Result{}, err
	}
	w.Reset()
	res := Apply(w, directives)
	w.Log.Info("level loaded",
		zap.String("path", path),
		zap.Int("spawned", res.Spawned),
		zap.Int("skipped", res.Skipped))
	return res, nil
}
