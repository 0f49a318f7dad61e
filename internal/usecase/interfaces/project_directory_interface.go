package interfaces

import "context"

// IProjectDirectory resolves project-manager assignments. It backs the
// "pending for this PM" queries; project administration itself lives in
// an upstream service.

type IProjectDirectory interface {
	ListProjectIDsForManager(ctx context.Context, managerID string) ([]string, error)
}
