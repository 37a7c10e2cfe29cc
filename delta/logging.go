package delta

import (
	"github.com/rs/zerolog/log"

	"github.com/deltastepping/dstep/utils"
)

// defaultStep logs one zerolog Debug event per iteration, matching
// utils/logging.go's terse "tag + key values" message style.
func defaultStep(binIndex int, elapsedMs int64, frontierSize int) {
	log.Debug().Msg("[delta] bin " + utils.V(binIndex) + " elapsed_ms " + utils.V(elapsedMs) + " frontier " + utils.V(frontierSize))
}
