package repositories

import "context"

type LivenessRepository interface {
	Liveness(ctx context.Context, exec Executor) error
}

type LivenessRepositoryPostgresql struct{}

func (repo *LivenessRepositoryPostgresql) Liveness(ctx context.Context, exec Executor) error {
	var result int
	return exec.QueryRow(ctx, "SELECT 1").Scan(&result)
}
