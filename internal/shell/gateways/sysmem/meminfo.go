// Package sysmem reads system memory from the operating system. The only
// implementation reads /proc/meminfo; a failed or partial read yields zero
// values, which downstream pressure classification treats as scarcity (the
// conservative direction) rather than an error.
package sysmem

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cometbrowser/comet/internal/shell/common/log"
	"github.com/cometbrowser/comet/internal/shell/domain"
)

const meminfoPath = "/proc/meminfo"

// ProcSampler samples system memory from /proc/meminfo.
type ProcSampler struct {
	path   string
	logger log.Logger
}

// NewProcSampler returns a sampler reading the standard /proc/meminfo path.
func NewProcSampler(logger log.Logger) *ProcSampler {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &ProcSampler{path: meminfoPath, logger: logger}
}

// Sample reads current system memory. Never returns an error: on a failed
// read the sample is zero-valued and the failure is logged.
func (s *ProcSampler) Sample() domain.MemorySample {
	f, err := os.Open(s.path)
	if err != nil {
		s.logger.Warn(map[string]any{
			"path":  s.path,
			"error": err.Error(),
		}, "failed to read system memory")
		return domain.MemorySample{}
	}
	defer f.Close()

	sample, err := parseMeminfo(f)
	if err != nil {
		s.logger.Warn(map[string]any{
			"path":  s.path,
			"error": err.Error(),
		}, "failed to parse meminfo")
		return domain.MemorySample{}
	}
	return sample
}

// parseMeminfo extracts the fields the pressure controller needs from
// /proc/meminfo-formatted text. Values are reported by the kernel in kB.
// Unknown lines are skipped; missing fields stay zero.
func parseMeminfo(r io.Reader) (domain.MemorySample, error) {
	var sample domain.MemorySample
	var swapFree uint64

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		bytes := kb * 1024

		switch fields[0] {
		case "MemTotal:":
			sample.TotalBytes = bytes
		case "MemAvailable:":
			sample.AvailableBytes = bytes
		case "SwapTotal:":
			sample.SwapTotalBytes = bytes
		case "SwapFree:":
			swapFree = bytes
		}
	}
	if err := scanner.Err(); err != nil {
		return domain.MemorySample{}, err
	}

	if sample.TotalBytes >= sample.AvailableBytes {
		sample.UsedBytes = sample.TotalBytes - sample.AvailableBytes
	}
	if sample.SwapTotalBytes >= swapFree {
		sample.SwapUsedBytes = sample.SwapTotalBytes - swapFree
	}
	return sample, nil
}
