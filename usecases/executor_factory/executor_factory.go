package executor_factory

import (
	"github.com/pimcore/admin-ui-classic-bundle-sub003/repositories"
)

type ExecutorFactory interface {
	NewExecutor() repositories.Executor
}

type executorGetter interface {
	GetExecutor() repositories.Executor
}

type DbExecutorFactory struct {
	executorGetter executorGetter
}

func NewDbExecutorFactory(getter executorGetter) DbExecutorFactory {
	return DbExecutorFactory{executorGetter: getter}
}

func (factory DbExecutorFactory) NewExecutor() repositories.Executor {
	return factory.executorGetter.GetExecutor()
}
