package category

import "errors"

var ErrCategoryExists = errors.New("category with this name already exists")
