package aquarium

import "errors"

var (
	ErrInvalidTuning     = errors.New("invalid tuning")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)
