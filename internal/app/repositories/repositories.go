package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository    *UserRepository
	ProjectRepository *ProjectRepository
	FigureRepository  *FigureRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db),
		ProjectRepository: NewProjectRepository(db),
		FigureRepository:  NewFigureRepository(db),
	}
}
