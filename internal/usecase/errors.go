package usecase

import "errors"

var (
	ErrWorkerNotFound = errors.New("worker not found")
	ErrTaskNotFound   = errors.New("task not found")
	ErrInvalidInput   = errors.New("invalid input")
)
