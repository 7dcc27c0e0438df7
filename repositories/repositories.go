package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	ExecutorGetter           ExecutorGetter
	ElementListingRepository ElementListingRepository
	WorkflowRepository       WorkflowRepository
	LivenessRepository       LivenessRepository
}

func NewQueryBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		ExecutorGetter:           NewExecutorGetter(pool),
		ElementListingRepository: &ElementListingRepositoryPostgresql{},
		WorkflowRepository:       &WorkflowRepositoryPostgresql{},
		LivenessRepository:       &LivenessRepositoryPostgresql{},
	}
}
