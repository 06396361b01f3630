package interfaces

import (
	"context"
	"renovation_estimator/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.
//
// Lookups return a zero-value Project (ID == "") when nothing matches. Update and Delete are
// conditional on both id and owner, so a record owned by someone else behaves as missing.
//
// The estimator service must be able to:
//   - create and replace projects wholesale (every write carries the full tree)
//   - list the projects of one owner
//   - page through every stored project for maintenance jobs
type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	Delete(ctx context.Context, id, ownerID string) (bool, error)
	ListPage(ctx context.Context, cursor string, limit int32) (projects []entities.Project, next string, err error)
}
