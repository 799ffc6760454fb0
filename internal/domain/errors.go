package domain

import "errors"

// ErrStorage - ошибка хранилища (соединение, ограничения уникальности и т.п.).
// Репозитории оборачивают в неё исходную ошибку драйвера.
var ErrStorage = errors.New("storage error")
