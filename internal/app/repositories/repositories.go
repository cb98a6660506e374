package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	ResourceRepository ResourceStore
	StudentRepository  StudentStore
}

// NewRepositories initializes the postgres-backed repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ResourceRepository: NewResourceRepository(db),
		StudentRepository:  NewStudentRepository(db),
	}
}

// NewMemoryRepositories initializes in-process repositories for the memory driver
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		ResourceRepository: NewMemoryResourceRepository(),
		StudentRepository:  NewMemoryStudentRepository(),
	}
}
