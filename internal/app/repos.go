package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/studypass-backend/internal/platform/logger"
	"github.com/yungbote/studypass-backend/internal/repos"
)

type Repos struct {
	Student repos.StudentRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Student: repos.NewStudentRepo(db, log),
	}
}
