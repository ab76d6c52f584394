package services

import (
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-scheduler/models"
)

var (
	ErrDefinitionRequired = fmt.Errorf("%w: tournament definition is required", models.ErrInvalidInput)
	ErrNoKnockoutStage    = errors.New("structure has no knockout stage to resolve")
)
