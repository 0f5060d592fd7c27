package ports

import "context"

// IKeyValue — инжектируемое key-value хранилище (аналог localStorage браузера):
// get/set/remove по строковым ключам. Реализации: file, memory, redis, pg, mongo.
// Get возвращает found == false, если ключа нет (это не ошибка).
type IKeyValue interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
