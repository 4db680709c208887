package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConfiguration indicates that required seed data (the "Other" types or the
// "Uncategorized" category) is missing from the database. This is fatal: it
// means the database was not seeded correctly and retrying cannot help.
var ErrConfiguration = errors.New("database not seeded correctly")
