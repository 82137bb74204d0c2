package processor

import (
	"os"

	"github.com/nguyentantai21042004/mux-flow/internal/config"
	"github.com/nguyentantai21042004/mux-flow/internal/logger"
	"github.com/nguyentantai21042004/mux-flow/pkg/executor"
)

type implProcessor struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger

	renameFile func(oldpath, newpath string) error
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		executor: exec,
		logger:   log,

		renameFile: os.Rename,
	}
}
