package repository

import "errors"

// ErrNotFound - запись отсутствует в хранилище
var ErrNotFound = errors.New("not found")
