/*
Package rcgen is a library for generating the C assets of a small raycasting
engine: tile maps with their tilesets and sprites, and packed RGBA textures.
*/
package rcgen

import "log"

// Generator runs the map and texture pipelines.
type Generator struct {
	db     *AssetDB
	logger *log.Logger
}

// New returns a Generator. db may be nil in which case nothing is recorded.
func New(db *AssetDB, logger *log.Logger) *Generator {
	return &Generator{
		db:     db,
		logger: logger,
	}
}
