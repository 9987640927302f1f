package service

import "errors"

var (
	ErrGameNotRegistered = errors.New("no contestants registered for game")
	ErrWinnerNotFound    = errors.New("no winner drawn for game")
	ErrNoParticipants    = errors.New("game was drawn without charged participants")
)
