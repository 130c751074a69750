//go:build !linux

package renderer

import "github.com/df07/go-pathtracer/pkg/log"

func pinToCore(worker int, logger log.Logger) {
	logger.Debugf("worker %d: core pinning is only supported on linux", worker)
}
