// Package history — локальная история расчётов: упорядоченное хранение
// записей поверх key-value хранилища, с жёстким лимитом в 50 записей.
package history

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"payrollCalc/internal/domain"
	"payrollCalc/internal/ports"
)

// StorageKey — ключ, под которым лежит JSON-массив записей
// (совпадает с ключом localStorage фронтенда).
const StorageKey = "payrollHistory"

// MaxRecords — максимум записей; лишние (самые старые) вытесняются при записи.
const MaxRecords = 50

// DefaultPageSize — размер страницы истории в интерфейсе.
const DefaultPageSize = 5

// Store реализует ports.IHistoryStore поверх ports.IKeyValue.
// Сортировка по убыванию CreatedAt применяется при чтении, а не при записи:
// на диске порядок не гарантирован.
type Store struct {
	kv  ports.IKeyValue
	key string
	cap int
	log *slog.Logger
}

// NewStore создаёт хранилище истории со стандартным ключом и лимитом.
func NewStore(kv ports.IKeyValue, log *slog.Logger) *Store {
	return &Store{kv: kv, key: StorageKey, cap: MaxRecords, log: log}
}

var _ ports.IHistoryStore = (*Store)(nil)

// Load возвращает все записи, новые сначала. Пустое, отсутствующее или
// битое содержимое — это «истории нет», а не ошибка: логируем и отдаём
// пустой список, наверх ничего не поднимаем.
func (s *Store) Load(ctx context.Context) []domain.HistoryRecord {
	raw, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.log.Warn("history load failed", "key", s.key, "error", err)
		return []domain.HistoryRecord{}
	}
	if !found || raw == "" {
		return []domain.HistoryRecord{}
	}

	var records []domain.HistoryRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.log.Warn("history parse failed, treating as empty", "key", s.key, "error", err)
		return []domain.HistoryRecord{}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt > records[j].CreatedAt
	})
	return records
}

// Append вставляет запись в голову списка и вытесняет самые старые записи
// сверх лимита. Возвращает false, если изменение не удалось сохранить —
// расчёт при этом считается успешным, деградацию хранилища решает вызывающий.
func (s *Store) Append(ctx context.Context, rec domain.HistoryRecord) bool {
	records := s.Load(ctx)
	records = append([]domain.HistoryRecord{rec}, records...)
	if len(records) > s.cap {
		records = records[:s.cap]
	}
	return s.persist(ctx, records)
}

// Remove удаляет запись с данным id. Отсутствие записи — no-op, не ошибка.
func (s *Store) Remove(ctx context.Context, id string) bool {
	records := s.Load(ctx)
	kept := records[:0]
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return true
	}
	return s.persist(ctx, kept)
}

// Clear полностью очищает историю (удаляет ключ).
func (s *Store) Clear(ctx context.Context) bool {
	if err := s.kv.Remove(ctx, s.key); err != nil {
		s.log.Warn("history clear failed", "key", s.key, "error", err)
		return false
	}
	return true
}

// persist сериализует и записывает весь список одним Set.
func (s *Store) persist(ctx context.Context, records []domain.HistoryRecord) bool {
	raw, err := json.Marshal(records)
	if err != nil {
		s.log.Warn("history marshal failed", "key", s.key, "error", err)
		return false
	}
	if err := s.kv.Set(ctx, s.key, string(raw)); err != nil {
		s.log.Warn("history persist failed", "key", s.key, "error", err)
		return false
	}
	return true
}

// Paginate — чистая оконная функция: срез [page*size, page*size+size),
// прижатый к границам списка. За пределами списка — пустая страница.
func Paginate(records []domain.HistoryRecord, pageIndex, pageSize int) []domain.HistoryRecord {
	if pageIndex < 0 || pageSize <= 0 {
		return []domain.HistoryRecord{}
	}
	start := pageIndex * pageSize
	if start >= len(records) {
		return []domain.HistoryRecord{}
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}
