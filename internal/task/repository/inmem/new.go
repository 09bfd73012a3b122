package inmem

import (
	"sync"
	"time"

	"github.com/Dev2197/smart-task-manager/internal/model"
	"github.com/Dev2197/smart-task-manager/internal/task/repository"
	pkgLog "github.com/Dev2197/smart-task-manager/pkg/log"
)

// implRepository is an in-memory, mutex-guarded task store. It is the
// default store for single-node deployments; swapping in a database only
// requires another implementation of repository.Repository.
type implRepository struct {
	l     pkgLog.Logger
	mu    sync.RWMutex
	tasks map[string]model.Task
	now   func() time.Time
}

var _ repository.Repository = (*implRepository)(nil)

// New creates an empty in-memory task repository.
func New(l pkgLog.Logger) *implRepository {
	return &implRepository{
		l:     l,
		tasks: make(map[string]model.Task),
		now:   time.Now,
	}
}
