package global

import (
	"github.com/ckoockiy/api-rest-dbz/config"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var (
	Config *config.Config
	Logger zerolog.Logger
	Mdb    *gorm.DB
)
