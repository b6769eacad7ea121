package listingapi

import (
	"context"
	"sync"

	"listing-service/internal/core/domain"
)

// SearchSession сериализует конкурентные поиски одного потребителя:
// каждый вызов Search получает порядковый номер, и если к моменту
// завершения запроса номер уже не последний, результат помечается
// устаревшим и не применяется. Устаревший ответ (включая его ошибку)
// молча отбрасывается - его место уже занял более новый запрос.
type SearchSession struct {
	client *Client

	mu  sync.Mutex
	seq uint64
}

func NewSearchSession(client *Client) *SearchSession {
	return &SearchSession{client: client}
}

// Search выполняет поиск. Второе возвращаемое значение - признак
// устаревания: true означает, что результат надо проигнорировать.
func (s *SearchSession) Search(ctx context.Context, query domain.SearchQuery) (*domain.ResultPage, bool, error) {
	s.mu.Lock()
	s.seq++
	ticket := s.seq
	s.mu.Unlock()

	page, err := s.client.ListProperties(ctx, query)

	s.mu.Lock()
	stale := ticket != s.seq
	s.mu.Unlock()

	if stale {
		return nil, true, nil
	}
	return page, false, err
}
