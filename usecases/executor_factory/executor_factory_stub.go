package executor_factory

import (
	"github.com/pashagolub/pgxmock/v4"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/repositories"
)

// ExecutorFactoryStub hands out a pgxmock pool, for use case tests asserting on queries.
type ExecutorFactoryStub struct {
	Mock pgxmock.PgxPoolIface
}

func NewExecutorFactoryStub() ExecutorFactoryStub {
	pool, _ := pgxmock.NewPool()

	return ExecutorFactoryStub{
		Mock: pool,
	}
}

func (stub ExecutorFactoryStub) NewExecutor() repositories.Executor {
	return stub.Mock
}
