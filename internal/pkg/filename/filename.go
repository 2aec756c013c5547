package filename

import (
	"fmt"
	"math/rand"
	"time"
)

// Generate produces an output name of the form image-YYYYMMDD-RRRRRR.png
// with a uniformly random six-digit suffix. There is no collision check:
// resolving name clashes belongs to the download subsystem.
func Generate() string {
	now := time.Now()
	suffix := 100000 + rand.Intn(900000)
	return fmt.Sprintf("image-%04d%02d%02d-%d.png", now.Year(), int(now.Month()), now.Day(), suffix)
}
